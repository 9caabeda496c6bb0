package rest

import "github.com/gin-gonic/gin"

type HttpMethod int

// The service surface is reads plus command-style posts; other verbs are not
// routed.
const (
	GET HttpMethod = iota
	POST
)

// Route binds a handler to a method and path inside a named router group.
type Route struct {
	Method      HttpMethod
	Path        string
	HandlerFunc gin.HandlerFunc
	Group       string
}

func NewRoute(method HttpMethod, group, path string, handler gin.HandlerFunc) Route {
	return Route{
		Method:      method,
		Path:        path,
		Group:       group,
		HandlerFunc: handler,
	}
}
