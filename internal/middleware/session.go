package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName is the cookie carrying the cart session identifier.
	SessionCookieName = "cart_session"
	// SessionKey is the gin context key for the session identifier.
	SessionKey ContextKey = "session_id"
)

// Session returns a middleware that ensures each request carries a cart
// session identifier. A new UUID is issued and set as a session cookie
// (no Max-Age, gone when the browser closes) when the client has none,
// which scopes the mirrored cart to the browser session.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Secure:   secure,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(string(SessionKey), sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session identifier from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
