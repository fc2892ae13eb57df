package interview

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the generation endpoints and, behind requireUser, the owner endpoints
func RegisterRoutes(r chi.Router, h *Handler, requireUser func(http.Handler) http.Handler) {
	r.Route("/api/vapi", func(r chi.Router) {
		r.Get("/generate", h.Ready)
		r.Post("/generate", h.Generate)
		r.Post("/questions", h.GenerateQuestions)
		r.Get("/questions/interview/{role}", h.ListQuestionSets)
	})

	r.Route("/api/interviews", func(r chi.Router) {
		r.Use(requireUser)

		r.Get("/", h.ListInterviews)
		r.Route("/{interview_id}", func(r chi.Router) {
			r.Get("/", h.GetInterview)
			r.Get("/export", h.ExportInterview)
		})
	})
}
