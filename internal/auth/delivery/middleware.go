package delivery

import (
	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/auth/usecase"
	"chat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	userKey   = "user"
	userIDKey = "userID"
)

// AuthMiddleware admits requests carrying a valid session cookie whose user
// still exists. Store failures answer 500 rather than 401.
func AuthMiddleware(authUsecase usecase.AuthUsecase, verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		user, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			apperror.Respond(c, err, verbose)
			return
		}

		SetCurrentUser(c, user)
		c.Next()
	}
}

// SetCurrentUser attaches the authenticated user to the request context.
func SetCurrentUser(c *gin.Context, user *authdomain.User) {
	c.Set(userKey, user)
	c.Set(userIDKey, user.ID)
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	return user, ok && user != nil
}
