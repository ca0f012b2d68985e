package find_waitlist_matches

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
)

type stubService struct {
	got *models.SlotRequest
	err error
}

func (s *stubService) FindMatches(_ context.Context, _ string, slot *models.SlotRequest) (*models.MatchesResponse, error) {
	s.got = slot
	if s.err != nil {
		return nil, s.err
	}
	return &models.MatchesResponse{Matches: []models.EntryResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops/shop-1/waitlist/matches", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"date":"2024-05-01","serviceId":"haircut"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "haircut", *svc.got.ServiceID)
	assert.Contains(t, rec.Body.String(), `"matches":[]`)
}

func TestHandle_InvalidSlot(t *testing.T) {
	rec := serve(NewHandler(&stubService{err: waitlist.ErrInvalidInput}, nopLogger{}), `{"date":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubService{}, nopLogger{}), `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
