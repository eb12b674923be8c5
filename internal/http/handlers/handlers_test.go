package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"keeper-service/internal/app/league"
	"keeper-service/internal/domain/teams"
	"keeper-service/internal/keeper"
	"keeper-service/internal/providers"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

type stubProvider struct {
	blob *providers.LeagueBlob
	err  error
}

func (s *stubProvider) FetchLeague(ctx context.Context, season int) (*providers.LeagueBlob, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blob, nil
}

func testBlob() *providers.LeagueBlob {
	return &providers.LeagueBlob{
		Draft: providers.Draft{DraftDetail: &providers.DraftDetail{Picks: []providers.DraftPick{
			{PlayerID: intp(1), RoundID: intp(3)},
		}}},
		Roster: providers.Roster{Teams: []providers.RosterTeam{
			{ID: intp(7), Roster: &providers.RosterSlots{Entries: []providers.RosterEntry{
				{PlayerPoolEntry: &providers.PlayerPoolEntry{Player: &providers.PoolPlayer{ID: intp(1), FullName: strp("Drew Hill")}}},
				{PlayerPoolEntry: &providers.PlayerPoolEntry{Player: &providers.PoolPlayer{ID: intp(2), FullName: strp("Curtis Duncan")}}},
			}}},
		}},
		TeamsMeta: providers.TeamsMeta{Teams: []providers.TeamMeta{
			{ID: intp(7), Name: strp("Space City Oilers")},
		}},
		FinalScoringPeriod: 17,
	}
}

func testHandler(p providers.LeagueProvider) *Handler {
	svc := league.NewService(league.Config{
		Provider: p,
		Rules:    keeper.NewRules(keeper.DefaultLateRoundEnd),
		Catalog:  teams.Catalog{{Key: "oilers", Name: "Space City Oilers"}},
		IDMap:    teams.IDMap{7: "oilers"},
		Season:   2024,
	})
	return NewHandler(svc, nil)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", rr.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := decodeBody(t, rr)["status"]; got != "ok" {
		t.Fatalf("expected status ok, got %v", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/teams", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestTeams(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/teams", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["last_season"] != float64(2024) {
		t.Fatalf("expected last_season 2024, got %v", body["last_season"])
	}
	items, ok := body["teams"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one team, got %v", body["teams"])
	}
}

func TestTeamRoster(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/team_roster?team=oilers", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["team_key"] != "oilers" {
		t.Fatalf("expected team_key oilers, got %v", body["team_key"])
	}
	if body["final_scoring_period"] != float64(17) {
		t.Fatalf("expected final_scoring_period 17, got %v", body["final_scoring_period"])
	}
	playersList, ok := body["players"].([]any)
	if !ok || len(playersList) != 2 {
		t.Fatalf("expected 2 players, got %v", body["players"])
	}
}

func TestTeamRosterMissingTeamParam(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/team_roster", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCheckEndpoint(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(`{"name":"Drew Hill","team_id":"oilers"}`))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["final_on_roster"] != true {
		t.Fatalf("expected roster hit, got %v", body)
	}
	if body["keeper_eligible"] != true {
		t.Fatalf("expected eligible, got %v", body)
	}
	if body["keeper_bucket"] != "1-10" {
		t.Fatalf("expected bucket 1-10, got %v", body["keeper_bucket"])
	}
}

func TestCheckEndpointMissingFields(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})

	for _, payload := range []string{`{}`, `{"name":"Drew Hill"}`, `{"team_id":"oilers"}`, `{"name":"  ","team_id":"oilers"}`} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(payload))
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, rr.Code)
		}
		if got := decodeBody(t, rr)["error"]; got != "Missing player name or team selection." {
			t.Fatalf("payload %s: unexpected error %v", payload, got)
		}
	}
}

func TestCheckEndpointInvalidJSON(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(`{broken`))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCheckEndpointUnknownPlayerStill200(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(`{"name":"nobody at all","team_id":"oilers"}`))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("missing player is a verdict, not an error; got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["final_on_roster"] != false {
		t.Fatalf("expected roster miss, got %v", body)
	}
}

func TestCheckEndpointFetchFailure(t *testing.T) {
	h := testHandler(&stubProvider{err: &providers.FetchError{Host: "x", StatusCode: 302, Message: "redirected"}})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(`{"name":"Drew Hill","team_id":"oilers"}`))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if got := decodeBody(t, rr)["error"]; !strings.Contains(got.(string), "Failed to load league data") {
		t.Fatalf("unexpected error %v", got)
	}
}

func TestCheckSelectionEndpoint(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	payload := `{"name":"Drew Hill","team_id":"oilers","current_keepers":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/check_keeper_selection", strings.NewReader(payload))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["can_add"] != true {
		t.Fatalf("expected addable, got %v", body)
	}
	if body["cost_round"] != float64(3) {
		t.Fatalf("expected cost 3, got %v", body["cost_round"])
	}
	info, ok := body["player_info"].(map[string]any)
	if !ok || info["name"] != "Drew Hill" {
		t.Fatalf("expected player info, got %v", body["player_info"])
	}
}

func TestCheckSelectionEndpointBucketConflict(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	payload := `{"name":"Drew Hill","team_id":"oilers","current_keepers":[{"player_id":9,"name":"Other","bucket":"1-10","cost_round":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/check_keeper_selection", strings.NewReader(payload))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["can_add"] != false {
		t.Fatalf("expected rejection, got %v", body)
	}
}

func TestCheckSelectionEndpointUnknownPlayer404(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/check_keeper_selection", strings.NewReader(`{"name":"nobody at all","team_id":"oilers"}`))
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if got := decodeBody(t, rr)["error"]; got != "Player not found." {
		t.Fatalf("unexpected error %v", got)
	}
}

func TestKeeperLimits(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/keeper_limits", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["max_keepers"] != float64(3) {
		t.Fatalf("expected max_keepers 3, got %v", body["max_keepers"])
	}
	limits, ok := body["limits"].(map[string]any)
	if !ok || limits["waiver"] != float64(1) {
		t.Fatalf("expected waiver cap 1, got %v", body["limits"])
	}
}

func TestErrorEchoesRequestID(t *testing.T) {
	h := testHandler(&stubProvider{blob: testBlob()})
	rr := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-Request-ID", "abc123")
	h.ServeHTTP(rr, req)

	if got := decodeBody(t, rr)["request_id"]; got != "abc123" {
		t.Fatalf("expected request id echo, got %v", got)
	}
}
