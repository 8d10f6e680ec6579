package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailsmith/internal/model"
	"mailsmith/internal/transport/http/handler"
)

type fakeDraftStore struct {
	drafts    []model.Draft
	nextID    uint
	createErr error
	listErr   error
}

func (s *fakeDraftStore) Create(draft *model.Draft) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	draft.ID = s.nextID
	draft.CreatedAt = time.Now()
	s.drafts = append([]model.Draft{*draft}, s.drafts...)
	return nil
}

func (s *fakeDraftStore) ListNewestFirst() ([]model.Draft, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.drafts, nil
}

func newEmailRouter(store handler.DraftStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handler.NewEmailHandler(store)
	router.GET("/emails", h.List)
	router.POST("/email", h.Create)
	return router
}

func TestEmailList(t *testing.T) {
	t.Parallel()

	t.Run("empty store returns empty array", func(t *testing.T) {
		t.Parallel()
		router := newEmailRouter(&fakeDraftStore{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emails", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("newest draft comes first", func(t *testing.T) {
		t.Parallel()
		store := &fakeDraftStore{}
		router := newEmailRouter(store)

		for _, subject := range []string{"first", "second"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/email",
				strings.NewReader(`{"subject":"`+subject+`"}`))
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emails", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got []model.Draft
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Subject)
		assert.Equal(t, "first", got[1].Subject)
		assert.Greater(t, got[0].ID, got[1].ID)
	})

	t.Run("store failure is a 500 with json error", func(t *testing.T) {
		t.Parallel()
		router := newEmailRouter(&fakeDraftStore{listErr: errors.New("connection refused")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emails", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to get emails"}`, w.Body.String())
	})
}

func TestEmailCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores the draft and returns it with an id", func(t *testing.T) {
		t.Parallel()
		store := &fakeDraftStore{}
		router := newEmailRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(
			`{"to":"a@example.com","cc":"b@example.com","bcc":"","subject":"Hello","body":"Hi there"}`))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var got model.Draft
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, "a@example.com", got.To)
		assert.Equal(t, "b@example.com", got.CC)
		assert.Equal(t, "Hello", got.Subject)
		assert.Equal(t, "Hi there", got.Body)
		assert.False(t, got.CreatedAt.IsZero())
		require.Len(t, store.drafts, 1)
	})

	t.Run("ids are strictly increasing", func(t *testing.T) {
		t.Parallel()
		store := &fakeDraftStore{}
		router := newEmailRouter(store)

		var lastID uint
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(`{"subject":"s"}`))
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusCreated, w.Code)

			var got model.Draft
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Greater(t, got.ID, lastID)
			lastID = got.ID
		}
	})

	t.Run("missing subject is rejected without an insert", func(t *testing.T) {
		t.Parallel()
		store := &fakeDraftStore{}
		router := newEmailRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(`{"to":"a@example.com"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"subject is required"}`, w.Body.String())
		assert.Empty(t, store.drafts)
	})

	t.Run("empty subject is rejected without an insert", func(t *testing.T) {
		t.Parallel()
		store := &fakeDraftStore{}
		router := newEmailRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(`{"subject":""}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.drafts)
	})

	t.Run("malformed payload is a 400", func(t *testing.T) {
		t.Parallel()
		router := newEmailRouter(&fakeDraftStore{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(`{not json`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("insert failure is a 500 with json error", func(t *testing.T) {
		t.Parallel()
		router := newEmailRouter(&fakeDraftStore{createErr: errors.New("table gone")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/email", strings.NewReader(`{"subject":"s"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to insert email"}`, w.Body.String())
	})
}
