package espn

import "net/http"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the injected client, or a default that never
// follows redirects: a 302 from the upstream means the host rejected the
// credentials and must surface as a failure, not a login page.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{
		Timeout: defaultHTTPTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func resolveHosts(hosts []string) []string {
	if len(hosts) > 0 {
		return hosts
	}
	return []string{defaultPrimaryHost, defaultFallbackHost}
}
