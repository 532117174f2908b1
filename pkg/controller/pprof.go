package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// profiles served by runtime/pprof in addition to the index handlers.
var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// MountPprof registers the net/http/pprof handlers on mux below prefix,
// e.g. "/debug/pprof". An empty prefix leaves mux untouched. Only GET is
// routed, except for symbol lookups which pprof also accepts as POST.
func MountPprof(mux *http.ServeMux, prefix string) {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return
	}

	mux.HandleFunc("GET "+prefix+"/{$}", pprof.Index)
	mux.HandleFunc("GET "+prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET "+prefix+"/profile", pprof.Profile)
	mux.HandleFunc("GET "+prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc("POST "+prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc("GET "+prefix+"/trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle("GET "+prefix+"/"+name, pprof.Handler(name))
	}
}
