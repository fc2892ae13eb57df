package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leandroquiroga/interview-platform-ai/internal/pkg/response"
)

func TestEnvelopes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{
			name:   "success without data",
			write:  func(w http.ResponseWriter) { response.JSON(w, http.StatusOK, response.Envelope{Success: true}) },
			status: http.StatusOK,
			body:   `{"success":true}`,
		},
		{
			name:   "error",
			write:  func(w http.ResponseWriter) { response.Error(w, http.StatusBadRequest, "All fields are required.") },
			status: http.StatusBadRequest,
			body:   `{"success":false,"message":"All fields are required."}`,
		},
		{
			name:   "data",
			write:  func(w http.ResponseWriter) { response.Success(w, []string{"a"}) },
			status: http.StatusOK,
			body:   `{"success":true,"data":["a"]}`,
		},
		{
			name:   "message",
			write:  func(w http.ResponseWriter) { response.Message(w, http.StatusOK, "ready") },
			status: http.StatusOK,
			body:   `{"success":true,"message":"ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestAttachment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Attachment(rec, "interview.md", "text/markdown", []byte("# hi"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="interview.md"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "# hi", rec.Body.String())
}
