package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/TsubasaK111/ConferenceCentral/internal/api/http/context"
	"github.com/TsubasaK111/ConferenceCentral/internal/model"
	"github.com/TsubasaK111/ConferenceCentral/internal/testutil"
)

var testIdentity = model.UserIdentity{
	ID:          "user@example.com",
	DisplayName: "Test User",
	Email:       "user@example.com",
}

func authenticatedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	cm := apicontext.NewManager()
	return r.WithContext(cm.SetIdentityToContext(r.Context(), testIdentity))
}

func TestProfile_Get(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		service := &MockProfileService{}
		service.On("Get", mock.Anything, testIdentity).Return(model.Profile{
			UserID:       testIdentity.ID,
			DisplayName:  "Test User",
			MainEmail:    testIdentity.Email,
			TeeShirtSize: model.TeeShirtSizeNotSpecified,
			Attending:    []string{"conf-1"},
		}, nil)

		h := NewProfile(service, apicontext.NewManager(), testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Get(w, authenticatedRequest(http.MethodGet, "/profile", ""))

		require.Equal(t, http.StatusOK, w.Code)

		var resp profileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testIdentity.ID, resp.UserID)
		assert.Equal(t, "NOT_SPECIFIED", resp.TeeShirtSize)
		assert.Equal(t, []string{"conf-1"}, resp.Attending)
	})

	t.Run("missing identity rejected", func(t *testing.T) {
		service := &MockProfileService{}
		h := NewProfile(service, apicontext.NewManager(), testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Get(w, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		service.AssertNotCalled(t, "Get")
	})

	t.Run("service error maps to 500", func(t *testing.T) {
		service := &MockProfileService{}
		service.On("Get", mock.Anything, testIdentity).Return(model.Profile{}, errors.New("store down"))

		h := NewProfile(service, apicontext.NewManager(), testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Get(w, authenticatedRequest(http.MethodGet, "/profile", ""))

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "internal server error", resp["error"])
	})
}

func TestProfile_Save(t *testing.T) {
	t.Run("saves fields", func(t *testing.T) {
		service := &MockProfileService{}
		service.On("Save", mock.Anything, testIdentity, model.SaveProfileParams{
			DisplayName:  "New Name",
			TeeShirtSize: "XL_M",
		}).Return(model.Profile{
			UserID:       testIdentity.ID,
			DisplayName:  "New Name",
			TeeShirtSize: model.TeeShirtSizeXLM,
		}, nil)

		h := NewProfile(service, apicontext.NewManager(), testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Save(w, authenticatedRequest(http.MethodPost, "/profile",
			`{"displayName":"New Name","teeShirtSize":"XL_M"}`))

		require.Equal(t, http.StatusOK, w.Code)

		var resp profileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "New Name", resp.DisplayName)
		assert.Equal(t, "XL_M", resp.TeeShirtSize)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		service := &MockProfileService{}
		h := NewProfile(service, apicontext.NewManager(), testutil.MakeNoopLogger())

		w := httptest.NewRecorder()
		h.Save(w, authenticatedRequest(http.MethodPost, "/profile", `{not json`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "Save")
	})
}
