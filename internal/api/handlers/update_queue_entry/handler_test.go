package update_queue_entry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/queue/models"
)

type stubService struct {
	called string
	err    error
}

func (s *stubService) respond(name, entryID string) (*models.EntryResponse, error) {
	s.called = name
	if s.err != nil {
		return nil, s.err
	}
	return &models.EntryResponse{ID: entryID, Status: name}, nil
}

func (s *stubService) Start(_ context.Context, _, id string) (*models.EntryResponse, error) {
	return s.respond("start", id)
}

func (s *stubService) Complete(_ context.Context, _, id string) (*models.EntryResponse, error) {
	return s.respond("complete", id)
}

func (s *stubService) NoShow(_ context.Context, _, id string) (*models.EntryResponse, error) {
	return s.respond("no_show", id)
}

func (s *stubService) MoveUp(_ context.Context, _, id string) (*models.EntryResponse, error) {
	return s.respond("move_up", id)
}

func (s *stubService) MoveDown(_ context.Context, _, id string) (*models.EntryResponse, error) {
	return s.respond("move_down", id)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops/shop-1/queue/e1/x", nil)
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1", "entryId": "e1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Dispatch(t *testing.T) {
	tests := map[Action]string{
		ActionStart:    "start",
		ActionComplete: "complete",
		ActionNoShow:   "no_show",
		ActionMoveUp:   "move_up",
		ActionMoveDown: "move_down",
	}

	for action, want := range tests {
		t.Run(string(action), func(t *testing.T) {
			svc := &stubService{}
			rec := serve(NewHandler(svc, action, nopLogger{}))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, svc.called)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: fmt.Errorf("%w: id=e1", queue.ErrEntryNotFound), wantStatus: http.StatusNotFound},
		{name: "invalid transition", err: fmt.Errorf("%w: already completed", queue.ErrInvalidTransition), wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, ActionStart, nopLogger{}))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
