package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *Handler, requireUser func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/sign-up", h.SignUp)
		r.Post("/sign-in", h.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(requireUser)

			r.Post("/sign-out", h.SignOut)
			r.Get("/me", h.Me)
		})
	})
}
