package get_waitlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

type stubService struct {
	status *string
	err    error
}

func (s *stubService) List(_ context.Context, _ string, status *string) ([]models.EntryResponse, error) {
	s.status = status
	if s.err != nil {
		return nil, s.err
	}
	return []models.EntryResponse{{ID: "w1", Status: "waiting"}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_StatusFilter(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/shops/shop-1/waitlist?status=waiting")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.status)
	assert.Equal(t, "waiting", *svc.status)

	rec = serve(NewHandler(svc, nopLogger{}), "/api/v1/shops/shop-1/waitlist")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.status)
}

func TestHandle_InvalidStatus(t *testing.T) {
	rec := serve(NewHandler(&stubService{err: waitlist.ErrInvalidInput}, nopLogger{}), "/api/v1/shops/shop-1/waitlist?status=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
