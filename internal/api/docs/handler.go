package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const documentPath = "/docs/openapi.yaml"

// Handler serves the OpenAPI document and a Swagger UI pointing at it
type Handler struct {
	document []byte
	etag     string
}

func NewHandler(document []byte) *Handler {
	sum := sha256.Sum256(document)
	return &Handler{
		document: document,
		etag:     `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusFound)
	})
	r.Get(documentPath, h.Document)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL(documentPath),
		httpSwagger.DocExpansion("list"),
	))
}

func (h *Handler) Document(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("If-None-Match") == h.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("ETag", h.etag)
	_, _ = w.Write(h.document)
}
