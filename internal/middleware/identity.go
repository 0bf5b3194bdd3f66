package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor_id"

// IdentityMiddleware reads the authenticated-actor id placed in the X-User-ID
// header by the external auth layer. A missing or malformed header leaves the
// request anonymous; handlers decide whether that is acceptable.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("X-User-ID"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
				c.Set(actorKey, id)
			}
		}
		c.Next()
	}
}

// ActorID returns the authenticated actor of the request, or false for
// anonymous requests.
func ActorID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
