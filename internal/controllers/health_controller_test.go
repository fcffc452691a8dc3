package controllers

import (
	"alarmclock/internal/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_ReturnsOK(t *testing.T) {
	f := newFixture(t, models.AlarmList{
		{Time: "07:00", IsActive: true},
		{Time: "08:00", IsActive: false},
	})
	hc := NewHealthController(f.service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp, "uptime")
	assert.Contains(t, resp, "uptime_seconds")
	assert.Equal(t, float64(2), resp["alarms"])
	assert.Equal(t, float64(1), resp["active"])
	assert.Equal(t, float64(1), resp["revision"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	f := newFixture(t, nil)
	hc := NewHealthController(f.service)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	hc.Health(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h0m0s"},
		{90 * time.Second, "0h1m30s"},
		{25*time.Hour + 3*time.Minute + 4*time.Second, "25h3m4s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}
