package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"keeper-service/internal/providers"
)

// Config controls how the espn client reaches the upstream fantasy API.
type Config struct {
	Hosts      []string
	LeagueID   string
	SWID       string
	S2         string
	HTTPClient *http.Client
}

// Client fetches league views from the ESPN fantasy API and assembles them
// into a raw league snapshot. It does not retry; wrapping with a retrying
// provider is the caller's choice.
type Client struct {
	hosts      []string
	leagueID   string
	swid       string
	s2         string
	httpClient httpDoer
}

// NewClient constructs an espn client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		hosts:      resolveHosts(cfg.Hosts),
		leagueID:   cfg.LeagueID,
		swid:       cfg.SWID,
		s2:         cfg.S2,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchLeague retrieves the four views that describe a league season and
// bundles them. The roster view is fetched at the season's final scoring
// period, resolved from settings or by probing late periods.
func (c *Client) FetchLeague(ctx context.Context, season int) (*providers.LeagueBlob, error) {
	var settings providers.Settings
	if err := c.getJSON(ctx, season, url.Values{"view": {viewSettings}}, &settings); err != nil {
		return nil, err
	}

	finalSP := 0
	if settings.Status != nil && settings.Status.FinalScoringPeriod != nil && *settings.Status.FinalScoringPeriod > 0 {
		finalSP = *settings.Status.FinalScoringPeriod
	}
	if finalSP == 0 {
		finalSP = c.probeFinalPeriod(ctx, season)
	}

	var draft providers.Draft
	if err := c.getJSON(ctx, season, url.Values{"view": {viewDraftDetail}}, &draft); err != nil {
		return nil, err
	}

	var roster providers.Roster
	params := url.Values{"view": {viewRoster}, "scoringPeriodId": {strconv.Itoa(finalSP)}}
	if err := c.getJSON(ctx, season, params, &roster); err != nil {
		return nil, err
	}

	var teamsMeta providers.TeamsMeta
	if err := c.getJSON(ctx, season, url.Values{"view": {viewTeam}}, &teamsMeta); err != nil {
		return nil, err
	}

	return &providers.LeagueBlob{
		Settings:           settings,
		Draft:              draft,
		Roster:             roster,
		TeamsMeta:          teamsMeta,
		FinalScoringPeriod: finalSP,
	}, nil
}

// probeFinalPeriod scans late scoring periods and picks the one holding the
// most rostered entries; ties go to the later period. Probe failures for
// individual periods are skipped, not fatal.
func (c *Client) probeFinalPeriod(ctx context.Context, season int) int {
	bestPeriod := 0
	bestTotal := 0
	for sp := probeStartPeriod; sp >= probeFloorPeriod; sp-- {
		var roster providers.Roster
		params := url.Values{"view": {viewRoster}, "scoringPeriodId": {strconv.Itoa(sp)}}
		if err := c.getJSON(ctx, season, params, &roster); err != nil {
			continue
		}
		total := 0
		for _, t := range roster.Teams {
			if t.Roster != nil {
				total += len(t.Roster.Entries)
			}
		}
		if total > bestTotal || (total > 0 && total == bestTotal && sp > bestPeriod) {
			bestPeriod = sp
			bestTotal = total
		}
	}
	if bestPeriod == 0 {
		return fallbackFinalPeriod
	}
	return bestPeriod
}

func (c *Client) getJSON(ctx context.Context, season int, params url.Values, out any) error {
	var lastErr error
	for _, host := range c.hosts {
		endpoint := host + fmt.Sprintf(apiPathFormat, season, c.leagueID)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		req.URL.RawQuery = params.Encode()
		c.decorate(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = &providers.FetchError{Host: host, Message: "request failed", Err: err}
			continue
		}

		if resp.StatusCode >= 300 && resp.StatusCode < 400 {
			location := resp.Header.Get("Location")
			drain(resp)
			lastErr = &providers.FetchError{
				Host:       host,
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("redirected to %s", location),
			}
			continue
		}

		contentType := resp.Header.Get("Content-Type")
		if resp.StatusCode == http.StatusOK && strings.Contains(contentType, "application/json") {
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return &providers.FetchError{Host: host, Message: "malformed payload", Err: err}
			}
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		resp.Body.Close()
		lastErr = &providers.FetchError{
			Host:       host,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected response (content-type=%q) %s", contentType, strings.TrimSpace(string(body))),
		}
	}
	return lastErr
}

// decorate attaches auth cookies and the browser-like headers the fantasy API
// expects before it will serve authenticated league views.
func (c *Client) decorate(req *http.Request) {
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}
	if c.s2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.s2})
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://fantasy.espn.com/football/league?leagueId="+c.leagueID)
	req.Header.Set("Origin", "https://fantasy.espn.com")
	req.Header.Set("x-fantasy-platform", "kona")
	req.Header.Set("x-fantasy-source", "kona")
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	resp.Body.Close()
}
