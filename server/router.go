package server

import (
	"sync"

	"httpmsg/message"
	"httpmsg/types"
)

// HandlerFunc fills in resp for a matched request.
type HandlerFunc func(req *message.Request, resp *message.Response)

type routeKey struct {
	method types.Method
	path   string
}

// Router maps method and path pairs onto handlers. Lookups match the
// request target's path only, so query strings never affect routing.
type Router struct {
	mu     sync.RWMutex
	routes map[routeKey]HandlerFunc
}

func NewRouter() *Router {
	return &Router{routes: make(map[routeKey]HandlerFunc)}
}

func (rt *Router) On(method types.Method, path string, handler HandlerFunc) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.routes[routeKey{method: method, path: path}] = handler
}

func (rt *Router) OnGet(path string, handler HandlerFunc) {
	rt.On(types.GET, path, handler)
}

func (rt *Router) OnPost(path string, handler HandlerFunc) {
	rt.On(types.POST, path, handler)
}

func (rt *Router) OnHead(path string, handler HandlerFunc) {
	rt.On(types.HEAD, path, handler)
}

func (rt *Router) Lookup(method types.Method, path string) (HandlerFunc, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	handler, ok := rt.routes[routeKey{method: method, path: path}]
	return handler, ok
}
