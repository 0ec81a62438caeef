package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/shared/constant"
	"todo/shared/failure"
	"todo/transport/http/response"
)

func TestResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantCode    int
		wantBody    string
		wantJSONHdr bool
	}{
		{
			name: "json payload is not wrapped",
			write: func(w http.ResponseWriter) {
				response.WithJSON(w, http.StatusCreated, map[string]string{"id": "T-1233"})
			},
			wantCode:    http.StatusCreated,
			wantBody:    `{"id":"T-1233"}`,
			wantJSONHdr: true,
		},
		{
			name: "failure keeps its status",
			write: func(w http.ResponseWriter) {
				response.WithError(w, failure.NotFound("T-1 not found"))
			},
			wantCode:    http.StatusNotFound,
			wantBody:    `{"error":"T-1 not found"}`,
			wantJSONHdr: true,
		},
		{
			name: "plain error is internal",
			write: func(w http.ResponseWriter) {
				response.WithError(w, errors.New("boom"))
			},
			wantCode:    http.StatusInternalServerError,
			wantBody:    `{"error":"boom"}`,
			wantJSONHdr: true,
		},
		{
			name: "message",
			write: func(w http.ResponseWriter) {
				response.WithMessage(w, http.StatusOK, constant.ResponseMessageHealthy)
			},
			wantCode:    http.StatusOK,
			wantBody:    `{"message":"OK"}`,
			wantJSONHdr: true,
		},
		{
			name:     "no content",
			write:    response.WithNoContent,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "empty",
			write:    response.WithEmpty,
			wantCode: http.StatusOK,
		},
		{
			name:        "request limit exceeded",
			write:       response.WithRequestLimitExceeded,
			wantCode:    http.StatusTooManyRequests,
			wantBody:    `{"message":"REQUEST LIMIT EXCEEDED"}`,
			wantJSONHdr: true,
		},
		{
			name:        "preparing shutdown",
			write:       response.WithPreparingShutdown,
			wantCode:    http.StatusServiceUnavailable,
			wantBody:    `{"error":"SERVER PREPARING TO SHUT DOWN"}`,
			wantJSONHdr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tt.write(rec)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}

			if tt.wantJSONHdr {
				assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			}
		})
	}
}
