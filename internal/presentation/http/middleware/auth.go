package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// Session keys
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "username"
	SessionReturnToKey = "return_to"
)

// LoginPath is where unauthenticated browser requests are sent
const LoginPath = "/admin/login"

// RequireAuth guards admin routes. Browser requests are redirected to the
// login page with the original URL stashed in the session; API clients get
// a 401 JSON response.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(SessionUserIDKey) != nil {
			c.Next()
			return
		}

		if WantsJSON(c) {
			response.ErrorWithCode(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		session.Set(SessionReturnToKey, c.Request.URL.RequestURI())
		_ = session.Save()
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}

// WantsJSON reports whether the client is an API consumer rather than a
// browser following links.
func WantsJSON(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	if strings.Contains(c.ContentType(), "application/json") {
		return true
	}
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// ReturnTo pops the stashed post-login destination, defaulting to the
// admin dashboard. Only same-site paths are honoured.
func ReturnTo(c *gin.Context) string {
	session := sessions.Default(c)
	target, _ := session.Get(SessionReturnToKey).(string)
	session.Delete(SessionReturnToKey)
	_ = session.Save()

	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/admin"
	}
	if u, err := url.Parse(target); err != nil || u.Host != "" {
		return "/admin"
	}
	return target
}
