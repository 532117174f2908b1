// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info by route.
//
// Provided helpers:
//   - MountPprof: Registers net/http/pprof handlers on a ServeMux below a prefix.
package controller
