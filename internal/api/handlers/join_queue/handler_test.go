package join_queue

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

type stubService struct {
	got *models.JoinRequest
	err error
}

func (s *stubService) Join(_ context.Context, shopID string, req *models.JoinRequest) (*models.EntryResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	position := 1
	return &models.EntryResponse{ID: "e1", ShopID: shopID, ClientName: req.ClientName, Status: "waiting", Position: &position}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops/shop-1/queue", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"clientName":"Alice","estimatedDurationMinutes":45}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 45, svc.got.EstimatedDurationMinutes)
	assert.Contains(t, rec.Body.String(), `"position":1`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "broken body", body: `{"clientName":`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", body: `{}`, err: fmt.Errorf("%w: clientName is required", queue.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"clientName":"A"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
