// Package router assembles the application's chi router: a standard
// middleware chain (request IDs, real IP, optional metrics, recovery,
// request logging) and a small grouping convention for mounting feature
// modules under path prefixes.
package router
