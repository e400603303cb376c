package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Module is a self-contained feature area that exposes its routes as a single
// handler, mountable under a path prefix.
type Module interface {
	Handle() http.Handler
}

// ModuleFunc adapts a plain handler-producing function to the Module interface.
type ModuleFunc func() http.Handler

func (f ModuleFunc) Handle() http.Handler { return f() }

// Mount pairs a path pattern with the module served under it.
type Mount struct {
	Pattern string
	Module  Module
}

// Group builds a sub-router with each module mounted under its pattern.
// Nil modules are skipped, so callers can pass optional features directly.
//
//	r.Mount("/account", router.Group(
//		router.Mount{Pattern: "/profile", Module: profileModule},
//		router.Mount{Pattern: "/settings", Module: settingsModule},
//	))
func Group(mounts ...Mount) chi.Router {
	r := chi.NewRouter()
	for _, m := range mounts {
		if m.Module != nil {
			r.Mount(m.Pattern, m.Module.Handle())
		}
	}
	return r
}
