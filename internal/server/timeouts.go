package server

import "time"

const (
	// Write timeout leaves headroom for the upstream fetch (up to four view
	// requests at 25s each is the worst case; in practice one slow call).
	readTimeout     = 10 * time.Second
	writeTimeout    = 60 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)
