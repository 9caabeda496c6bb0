package rest

import "github.com/gin-gonic/gin"

// AllGroups attaches a middleware to the whole engine instead of a single
// router group.
const AllGroups = "*"

// Middleware attaches a gin handler to a router group, or to every route when
// the group is AllGroups.
type Middleware struct {
	Handler gin.HandlerFunc
	Group   string
}

func NewMiddleware(group string, handler gin.HandlerFunc) Middleware {
	return Middleware{
		Group:   group,
		Handler: handler,
	}
}
