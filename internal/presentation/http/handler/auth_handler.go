package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
	"github.com/newgenpools/site-api/internal/presentation/http/middleware"
	"github.com/newgenpools/site-api/pkg/apperror"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /admin/login. Browser form logins redirect to the
// stashed destination; API clients get the JSON envelope.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c)
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.loginFailed(c)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserIDKey, user.ID.String())
	session.Set(middleware.SessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		response.ErrorWithCode(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	target := middleware.ReturnTo(c)
	if !middleware.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, target)
		return
	}
	response.OK(c, "Logged in", gin.H{
		"username":  user.Username,
		"return_to": target,
	})
}

func (h *AuthHandler) loginFailed(c *gin.Context) {
	if !middleware.WantsJSON(c) {
		middleware.AddFlash(c, "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
		return
	}
	response.Error(c, apperror.ErrInvalidCredentials)
}

// Logout handles POST /admin/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		response.ErrorWithCode(c, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	response.OK(c, "Logged out", nil)
}

// Me handles GET /admin/api/me, reporting the signed-in user
func (h *AuthHandler) Me(c *gin.Context) {
	session := sessions.Default(c)
	username, _ := session.Get(middleware.SessionUsernameKey).(string)
	response.OK(c, "Session active", gin.H{"username": username})
}
