package update_shop_settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/service/settings"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/settings/models"
)

type stubService struct {
	got *models.UpdateSettingsRequest
	err error
}

func (s *stubService) Update(_ context.Context, shopID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.SettingsResponse{ShopID: shopID, ServerCount: *req.ServerCount, DefaultDurationMinutes: 30}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/shops/shop-1/settings", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"shopId": "shop-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"serverCount":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Nil(t, svc.got.DefaultDurationMinutes)
	assert.Contains(t, rec.Body.String(), `"serverCount":3`)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(NewHandler(&stubService{err: settings.ErrInvalidInput}, nopLogger{}), `{"serverCount":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubService{}, nopLogger{}), `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubService{err: settings.ErrInternal}, nopLogger{}), `{"serverCount":2}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
