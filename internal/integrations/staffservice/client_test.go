package staffservice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestCountActiveStaff(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/shops/shop-1/staff", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"staff":[
			{"id":"s1","is_active":true},
			{"id":"s2","is_active":false},
			{"id":"s3","is_active":true}
		]}`))
	})

	count, err := client.CountActiveStaff(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountActiveStaff_ShopNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.CountActiveStaff(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestCountActiveStaff_Degraded(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "broken body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"staff":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.CountActiveStaff(context.Background(), "shop-1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrServiceDegraded))
		})
	}
}

func TestCountActiveStaff_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, nopLogger{})

	_, err := client.CountActiveStaff(context.Background(), "shop-1")
	assert.ErrorIs(t, err, ErrServiceDegraded)
}
