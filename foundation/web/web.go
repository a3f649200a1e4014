// Package web wraps gin with the small request/response contract the rest
// of the service is written against. Controllers receive a *Context and
// return an error; middleware is a function over handlers.
package web

import (
	"log"
	"net/http"
	"os"
	"syscall"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every controller method implements.
type Handler func(c *Context) error

// Middleware runs code before or after a handler in the chain.
type Middleware func(Handler) Handler

// App is the entry point for the web application. It embeds the gin engine
// so raw gin routes (static files, websockets) stay available.
type App struct {
	*gin.Engine
	shutdown chan os.Signal
}

func NewApp(shutdown chan os.Signal) *App {
	gin.SetMode(gin.ReleaseMode)

	return &App{
		Engine:   gin.New(),
		shutdown: shutdown,
	}
}

// SignalShutdown is used to gracefully shut down the app when an integrity
// issue is identified.
func (a *App) SignalShutdown() {
	a.shutdown <- syscall.SIGTERM
}

func (a *App) handle(method string, path string, handler Handler, middlewares ...Middleware) {
	h := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			h = middlewares[i](h)
		}
	}

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := NewContext(c)
		if err := h(ctx); err != nil {
			// Handlers respond before returning; an error here means
			// the response could not be written at all.
			log.Println("web: unhandled error:", err)
			a.SignalShutdown()
		}
	})
}

func (a *App) Get(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodGet, path, handler, middlewares...)
}

func (a *App) Post(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPost, path, handler, middlewares...)
}

func (a *App) Put(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPut, path, handler, middlewares...)
}

func (a *App) Patch(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodPatch, path, handler, middlewares...)
}

func (a *App) Delete(path string, handler Handler, middlewares ...Middleware) {
	a.handle(http.MethodDelete, path, handler, middlewares...)
}
