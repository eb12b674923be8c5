package espn

import "time"

const providerName = "espn"

const (
	// Hosts are tried in order; the reads host authenticates reliably while
	// the public host may answer with a 302 to a login page.
	defaultPrimaryHost  = "https://lm-api-reads.fantasy.espn.com"
	defaultFallbackHost = "https://fantasy.espn.com"

	apiPathFormat = "/apis/v3/games/ffl/seasons/%d/segments/0/leagues/%s"

	defaultHTTPTimeout = 25 * time.Second

	viewSettings    = "mSettings"
	viewDraftDetail = "mDraftDetail"
	viewRoster      = "mRoster"
	viewTeam        = "mTeam"

	// Probe window for the final scoring period when settings omit it.
	probeStartPeriod = 22
	probeFloorPeriod = 12

	// Last-resort final period when neither settings nor probing produce one.
	fallbackFinalPeriod = 19
)
