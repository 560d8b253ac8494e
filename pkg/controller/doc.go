// Package controller contains HTTP middlewares and helpers shared by the API
// server.
//
// Middlewares:
//   - WithCORS: answers preflight requests and sets CORS headers for allowed origins.
//   - WithLogger: attaches a request-scoped logger and request ID, then writes an access log.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof under /debug/pprof/.
package controller
