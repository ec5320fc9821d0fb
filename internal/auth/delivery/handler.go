package delivery

import (
	"net/http"

	authdomain "chat-backend/internal/auth/domain"
	authdto "chat-backend/internal/auth/dto"
	"chat-backend/internal/auth/usecase"
	"chat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var errBadBody = apperror.Validation("Invalid request body")

// AuthHandler handles sign-up, login, logout and session checks
type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	secureCookie bool
	verbose      bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure; verbose exposes internal error causes to clients.
func NewAuthHandler(authUsecase usecase.AuthUsecase, secureCookie, verbose bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		secureCookie: secureCookie,
		verbose:      verbose,
	}
}

// Signup registers an account and starts a session
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, errBadBody.Wrap(err), h.verbose)
		return
	}

	session, err := h.authUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	setSessionCookie(c, session.Token, h.authUsecase.TokenTTL(), h.secureCookie)
	respondUser(c, http.StatusCreated, "Registration successful!", session.User)
}

// Login starts a session for existing credentials
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, errBadBody.Wrap(err), h.verbose)
		return
	}

	session, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	setSessionCookie(c, session.Token, h.authUsecase.TokenTTL(), h.secureCookie)
	respondUser(c, http.StatusOK, "Logged in successfully", session.User)
}

// Logout clears the session cookie. It succeeds with or without a session.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, authdto.UserResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// CheckAuth returns the user behind the current session
// GET /api/auth/check-auth
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}
	respondUser(c, http.StatusOK, "User is authenticated", user)
}

func respondUser(c *gin.Context, status int, message string, user *authdomain.User) {
	public := user.Public()
	c.JSON(status, authdto.UserResponse{
		Success: true,
		Message: message,
		Data:    &public,
	})
}
