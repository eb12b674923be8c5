package http

import nethttp "net/http"

// NewRouter mounts the primary handler at the root. The server layer may add
// admin routes to the returned mux before wrapping with middleware.
func NewRouter(handler nethttp.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.Handle("/", handler)
	return mux
}
