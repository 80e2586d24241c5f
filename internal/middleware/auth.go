package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// SessionCookie is the cookie the login handler sets.
const SessionCookie = "session"

// Identity is the request-scoped caller identity attached by the session
// middleware. Handlers read it through CurrentIdentity instead of reaching
// into ambient state.
type Identity struct {
	UserID uint
	Role   string
}

// CurrentIdentity returns the identity attached to the request, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// Session requires a valid session token, taken from the Authorization
// header or the session cookie.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := identityFromRequest(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// OptionalSession attaches the identity when a valid session token is
// present and lets anonymous requests through.
func OptionalSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := identityFromRequest(c, secret); ok {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

func identityFromRequest(c *gin.Context, secret string) (Identity, bool) {
	var tokStr string
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokStr = parts[1]
		}
	}
	if tokStr == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokStr = cookie
		}
	}
	if tokStr == "" {
		return Identity{}, false
	}

	tok, err := jwt.Parse(tokStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "session" {
		return Identity{}, false
	}
	// sub is float64 after JSON decoding
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return Identity{}, false
	}
	role, _ := claims["role"].(string)
	return Identity{UserID: uint(sub), Role: role}, true
}
