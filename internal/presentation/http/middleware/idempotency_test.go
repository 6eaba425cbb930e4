package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (m *memIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := m.keys[key+"/"+userID.String()]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (m *memIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	m.keys[ikey.Key+"/"+ikey.UserID.String()] = ikey
	return nil
}

func (m *memIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func newIdempotencyTestRouter(t *testing.T) (*gin.Engine, *int, []*http.Cookie) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	userID := uuid.NewString()
	router.POST("/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionUserIDKey, userID)
		_ = session.Save()
		c.Status(http.StatusOK)
	})

	writes := 0
	router.POST("/sales", Idempotency(newMemIdempotencyRepo()), func(c *gin.Context) {
		writes++
		c.JSON(http.StatusCreated, gin.H{"writes": writes})
	})

	loginW := httptest.NewRecorder()
	router.ServeHTTP(loginW, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusOK, loginW.Code)
	cookies := loginW.Result().Cookies()
	require.NotEmpty(t, cookies)

	return router, &writes, cookies
}

func postSale(router *gin.Engine, cookies []*http.Cookie, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysDuplicateKey(t *testing.T) {
	router, writes, cookies := newIdempotencyTestRouter(t)

	first := postSale(router, cookies, "retry-123")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, 1, *writes)

	second := postSale(router, cookies, "retry-123")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, *writes, "the handler must not run twice for one key")
}

func TestIdempotencyDistinctKeysWriteSeparately(t *testing.T) {
	router, writes, cookies := newIdempotencyTestRouter(t)

	postSale(router, cookies, "key-a")
	postSale(router, cookies, "key-b")
	assert.Equal(t, 2, *writes)
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	router, writes, cookies := newIdempotencyTestRouter(t)

	postSale(router, cookies, "")
	postSale(router, cookies, "")
	assert.Equal(t, 2, *writes)
}
