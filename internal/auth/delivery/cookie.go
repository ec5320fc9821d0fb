package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session token.
const SessionCookie = "jwt"

func setSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", secure, true)
}

// clearSessionCookie expires the cookie with the same attributes it was set with.
func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}
