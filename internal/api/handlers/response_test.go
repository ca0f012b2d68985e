package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondHelpers(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(w http.ResponseWriter)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "json",
			respond:    func(w http.ResponseWriter) { RespondJSON(w, http.StatusCreated, map[string]int{"position": 1}) },
			wantStatus: http.StatusCreated,
			wantBody:   `{"position":1}`,
		},
		{
			name:       "bad request",
			respond:    func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") },
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"плохо"}`,
		},
		{
			name:       "not found",
			respond:    func(w http.ResponseWriter) { RespondNotFound(w, "нет") },
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"нет"}`,
		},
		{
			name:       "conflict",
			respond:    func(w http.ResponseWriter) { RespondConflict(w, "занято") },
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"занято"}`,
		},
		{
			name:       "internal",
			respond:    RespondInternalError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"внутренняя ошибка сервера"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "x", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.NoError(t, DecodeOptionalJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeOptionalJSON(req, &v))
}
