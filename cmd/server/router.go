package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vportnov/airport-api/internal/api"
	apiMiddleware "github.com/vportnov/airport-api/internal/api/middleware"
	"github.com/vportnov/airport-api/internal/service/auth"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	crewHandler := api.NewCrewHandler(app.crewStore)
	airplaneTypeHandler := api.NewAirplaneTypeHandler(app.airplaneTypeStore)
	airplaneHandler := api.NewAirplaneHandler(app.airplaneStore)
	airportHandler := api.NewAirportHandler(app.airportStore, app.routeStore)
	routeHandler := api.NewRouteHandler(app.routeStore)
	flightHandler := api.NewFlightHandler(app.flightStore, app.db, app.flightCache)
	orderHandler := api.NewOrderHandler(app.orderStore, app.db, app.flightCache)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Routes are registered with trailing slashes; accept both forms.
		r.Use(apiMiddleware.TrailingSlashes)

		// Public authentication endpoints
		r.Post("/user/register/", authHandler.Register)
		r.Post("/user/token/", authHandler.Token)
		r.Post("/user/token/refresh/", authHandler.RefreshToken)

		// Everything else requires authentication
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/user/me/", authHandler.Me)
			r.Patch("/user/me/", authHandler.UpdateMe)

			r.Route("/crews", func(r chi.Router) {
				guard := policyFor(auth.ResourceCrews)
				r.With(guard(auth.ActionRead)).Get("/", crewHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", crewHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", crewHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", crewHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", crewHandler.Patch)
					r.With(guard(auth.ActionDelete)).Delete("/", crewHandler.Delete)
				})
			})

			r.Route("/airplane-types", func(r chi.Router) {
				guard := policyFor(auth.ResourceAirplaneTypes)
				r.With(guard(auth.ActionRead)).Get("/", airplaneTypeHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", airplaneTypeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", airplaneTypeHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", airplaneTypeHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", airplaneTypeHandler.Update)
					r.With(guard(auth.ActionDelete)).Delete("/", airplaneTypeHandler.Delete)
				})
			})

			r.Route("/airplanes", func(r chi.Router) {
				guard := policyFor(auth.ResourceAirplanes)
				r.With(guard(auth.ActionRead)).Get("/", airplaneHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", airplaneHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", airplaneHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", airplaneHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", airplaneHandler.Patch)
					r.With(guard(auth.ActionDelete)).Delete("/", airplaneHandler.Delete)
					r.With(guard(auth.ActionUpdate)).Post("/upload-image/", airplaneHandler.UploadImage)
					r.With(guard(auth.ActionRead)).Get("/image/", airplaneHandler.GetImage)
				})
			})

			r.Route("/airports", func(r chi.Router) {
				guard := policyFor(auth.ResourceAirports)
				r.With(guard(auth.ActionRead)).Get("/", airportHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", airportHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", airportHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", airportHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", airportHandler.Patch)
					r.With(guard(auth.ActionDelete)).Delete("/", airportHandler.Delete)
				})
			})

			r.Route("/routes", func(r chi.Router) {
				guard := policyFor(auth.ResourceRoutes)
				r.With(guard(auth.ActionRead)).Get("/", routeHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", routeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", routeHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", routeHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", routeHandler.Patch)
					r.With(guard(auth.ActionDelete)).Delete("/", routeHandler.Delete)
				})
			})

			r.Route("/flights", func(r chi.Router) {
				guard := policyFor(auth.ResourceFlights)
				r.With(guard(auth.ActionRead)).Get("/", flightHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", flightHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", flightHandler.Get)
					r.With(guard(auth.ActionUpdate)).Put("/", flightHandler.Update)
					r.With(guard(auth.ActionUpdate)).Patch("/", flightHandler.Patch)
					r.With(guard(auth.ActionDelete)).Delete("/", flightHandler.Delete)
				})
			})

			r.Route("/orders", func(r chi.Router) {
				guard := policyFor(auth.ResourceOrders)
				r.With(guard(auth.ActionRead)).Get("/", orderHandler.List)
				r.With(guard(auth.ActionCreate)).Post("/", orderHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.With(guard(auth.ActionRead)).Get("/", orderHandler.Get)
					r.Put("/", orderHandler.MethodNotAllowed)
					r.Patch("/", orderHandler.MethodNotAllowed)
					r.With(guard(auth.ActionDelete)).Delete("/", orderHandler.Delete)
				})
			})
		})
	})

	// Liveness endpoint, no auth
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// policyFor binds the policy middleware to one resource, so routes only
// name the action.
func policyFor(resource auth.Resource) func(auth.Action) func(http.Handler) http.Handler {
	return func(action auth.Action) func(http.Handler) http.Handler {
		return apiMiddleware.RequirePolicy(action, resource)
	}
}
