package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	router.POST("/login", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionUserIDKey, "some-user")
		_ = session.Save()
		c.Status(http.StatusOK)
	})

	protected := router.Group("/admin", RequireAuth())
	protected.GET("/api/dashboard", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAuthRedirectsBrowsers(t *testing.T) {
	router := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequireAuthRejectsAPIClients(t *testing.T) {
	router := newAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequireAuthAllowsSessions(t *testing.T) {
	router := newAuthTestRouter()

	loginReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	loginW := httptest.NewRecorder()
	router.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	cookies := loginW.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil)
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
