package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"keeper-service/internal/providers"
)

const kindLeague = "league"

// Store defines how captured league snapshots are loaded.
type Store interface {
	LoadLeague(season int) (*providers.LeagueBlob, error)
}

// FSStore loads league snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadLeague reads a captured snapshot for the given season from disk.
// Files live at {basePath}/league/{season}.json with a LeagueBlob payload.
func (s *FSStore) LoadLeague(season int) (*providers.LeagueBlob, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if season <= 0 {
		return nil, errors.New("snapshot season required")
	}

	f, err := os.Open(leaguePath(s.basePath, season))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var blob providers.LeagueBlob
	if err := json.NewDecoder(f).Decode(&blob); err != nil {
		return nil, err
	}
	return &blob, nil
}

// Writer persists captured league snapshots.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteLeagueSnapshot writes the league snapshot for a season, atomically via
// a temp file rename so a concurrent load never sees a partial write.
func (w *Writer) WriteLeagueSnapshot(season int, blob *providers.LeagueBlob) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if season <= 0 {
		return errors.New("snapshot season required")
	}
	if blob == nil {
		return errors.New("snapshot payload required")
	}

	target := leaguePath(w.basePath, season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "league-*.json.tmp")
	if err != nil {
		return err
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blob); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func leaguePath(basePath string, season int) string {
	return filepath.Join(basePath, kindLeague, fmt.Sprintf("%d.json", season))
}
