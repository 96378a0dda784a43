package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrailingSlashes(t *testing.T) {
	r := chi.NewRouter()
	r.Use(TrailingSlashes)

	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	r.Get("/crews/", ok)
	r.Route("/airplanes", func(r chi.Router) {
		r.Route("/{id}", func(r chi.Router) {
			r.Post("/upload-image/", ok)
		})
	})

	id := uuid.NewString()
	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/crews"},
		{http.MethodGet, "/crews/"},
		{http.MethodPost, "/airplanes/" + id + "/upload-image"},
		{http.MethodPost, "/airplanes/" + id + "/upload-image/"},
	}

	for _, target := range targets {
		req := httptest.NewRequest(target.method, target.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "%s %s", target.method, target.path)
	}
}

func TestTrailingSlashes_KeepsRequestURL(t *testing.T) {
	r := chi.NewRouter()
	r.Use(TrailingSlashes)

	var seenPath string
	r.Get("/flights/", func(w http.ResponseWriter, req *http.Request) {
		seenPath = req.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/flights?page=2", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "/flights", seenPath)
}
