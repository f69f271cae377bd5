package middleware

import (
	"net/http"
	"strings"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type TokenVerifier interface {
	Verify(token string) (domain.Actor, error)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, ok := bearer(c)
		if !ok {
			c.Set("error", "missing bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		actor, err := tokens.Verify(token)
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth identifies signed-in callers on public routes. A missing or
// bad token leaves the caller anonymous.
func OptionalAuth(tokens TokenVerifier) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if token, ok := bearer(c); ok {
			if actor, err := tokens.Verify(token); err == nil {
				c.Set(actorKey, actor)
			}
		}
		c.Next()
	}
}

// Actor returns the caller set by the auth middleware, or the anonymous
// actor.
func Actor(c *ginext.Context) domain.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{}
}

func bearer(c *ginext.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}
