package api

import (
	"net/http"
	"strings"

	"github.com/Domenick1991/carbooking/internal/auth"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthOptional extracts the principal from a bearer token when one is
// present. Requests without a token proceed as guests.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if p, err := auth.ParseValidate(secret, strings.TrimPrefix(h, "Bearer ")); err == nil {
				c.Set(principalKey, p)
			}
		}
		c.Next()
	}
}

func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		p, err := auth.ParseValidate(secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		p := principalFrom(c)
		if p == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if _, ok := allowed[p.Role]; !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}
