package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/TsubasaK111/ConferenceCentral/internal/testutil"
)

func TestAnnouncement_Get(t *testing.T) {
	t.Run("returns active announcement", func(t *testing.T) {
		service := &MockAnnouncementService{}
		service.On("Get", mock.Anything).
			Return("Last chance to attend! The following conferences are nearly sold out: GopherCon")

		h := NewAnnouncement(service, testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Get(w, httptest.NewRequest(http.MethodGet, "/announcement", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"announcement":"Last chance to attend! The following conferences are nearly sold out: GopherCon"}`,
			w.Body.String())
	})

	t.Run("returns empty string when none active", func(t *testing.T) {
		service := &MockAnnouncementService{}
		service.On("Get", mock.Anything).Return("")

		h := NewAnnouncement(service, testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Get(w, httptest.NewRequest(http.MethodGet, "/announcement", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"announcement":""}`, w.Body.String())
	})
}

func TestHealth_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		pinger := &MockPinger{}
		pinger.On("Ping", mock.Anything).Return(nil)

		h := NewHealth(pinger)

		w := httptest.NewRecorder()
		h.Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		pinger := &MockPinger{}
		pinger.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		h := NewHealth(pinger)

		w := httptest.NewRecorder()
		h.Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}
