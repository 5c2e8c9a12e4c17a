package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/internal/infrastructure/memory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotentRouter(repo repository.IdempotencyRepository, operatorID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Set(OperatorIDKey, operatorID)
		c.Next()
	})
	r.Use(Idempotency(IdempotencyConfig{Repo: repo}))
	r.POST("/bookings", handler)
	return r
}

func post(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyConcurrentDuplicateRunsOnce(t *testing.T) {
	repo := memory.NewStore().Idempotency()
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	r := newIdempotentRouter(repo, uuid.New(), func(c *gin.Context) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		c.JSON(http.StatusCreated, gin.H{"reference_no": "NJV-1"})
	})

	first := make(chan *httptest.ResponseRecorder)
	go func() {
		first <- post(r, "booking-1", `{"customer_name":"Anu"}`)
	}()
	<-started

	second := post(r, "booking-1", `{"customer_name":"Anu"}`)
	assert.Equal(t, http.StatusConflict, second.Code)

	close(release)
	w := <-first
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	replay := post(r, "booking-1", `{"customer_name":"Anu"}`)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, w.Body.String(), replay.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestIdempotencyRejectsDifferentBody(t *testing.T) {
	repo := memory.NewStore().Idempotency()
	r := newIdempotentRouter(repo, uuid.New(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	require.Equal(t, http.StatusCreated, post(r, "k", `{"a":1}`).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, post(r, "k", `{"a":2}`).Code)
}

func TestIdempotencyReleasesKeyOnServerError(t *testing.T) {
	repo := memory.NewStore().Idempotency()
	operatorID := uuid.New()
	var calls int32

	r := newIdempotentRouter(repo, operatorID, func(c *gin.Context) {
		if atomic.AddInt32(&calls, 1) == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	assert.Equal(t, http.StatusInternalServerError, post(r, "k", `{}`).Code)
	key, err := repo.GetByKey(context.Background(), "k", operatorID)
	require.NoError(t, err)
	assert.Nil(t, key)

	assert.Equal(t, http.StatusCreated, post(r, "k", `{}`).Code)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIdempotencyReleasesKeyOnPanic(t *testing.T) {
	repo := memory.NewStore().Idempotency()
	operatorID := uuid.New()

	r := newIdempotentRouter(repo, operatorID, func(c *gin.Context) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, post(r, "k", `{}`).Code)
	key, err := repo.GetByKey(context.Background(), "k", operatorID)
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	repo := memory.NewStore().Idempotency()
	var calls int32
	r := newIdempotentRouter(repo, uuid.New(), func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	post(r, "", `{}`)
	post(r, "", `{}`)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
