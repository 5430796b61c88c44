package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ActorKey is the gin context key the actor label is stored under.
const ActorKey = "actor"

// ActorHeader is the request header carrying the acting operator's label.
const ActorHeader = "X-Actor"

// Actor populates the request context with the acting operator's label for
// decision and audit attribution. This is attribution, not authentication:
// the console supplies the label and the backend takes it at face value.
func Actor(defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(ActorHeader))
		if actor == "" {
			actor = defaultActor
		}
		c.Set(ActorKey, actor)
		c.Next()
	}
}

// ActorFrom reads the actor label from the context.
func ActorFrom(c *gin.Context) string {
	if actor, exists := c.Get(ActorKey); exists {
		if label, ok := actor.(string); ok && label != "" {
			return label
		}
	}
	return "Admin User"
}
