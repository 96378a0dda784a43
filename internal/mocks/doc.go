// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes one function field per interface
// method; unset fields panic so a test fails loudly when a handler makes
// an unexpected call.
package mocks
