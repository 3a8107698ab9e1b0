package selfplay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// Results is the running tally of finished self-play games.
type Results struct {
	GamesPlayed int `json:"Games played"`
	WhiteWins   int `json:"White wins"`
	BlackWins   int `json:"Black Wins"`
	Draws       int `json:"Draw"`
}

// Add counts one finished game.
func (r *Results) Add(res gm.Result) {
	switch res {
	case gm.WhiteWins:
		r.WhiteWins++
	case gm.BlackWins:
		r.BlackWins++
	case gm.Draw:
		r.Draws++
	default:
		return
	}
	r.GamesPlayed++
}

// LoadResults reads the tally at path. A missing or unreadable JSON document
// starts the tally from zero; only I/O failures are reported.
func LoadResults(path string) (Results, error) {
	var r Results
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return r, fmt.Errorf("selfplay: read results: %w", err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return Results{}, nil
	}
	return r, nil
}

// SaveResults writes the tally atomically.
func SaveResults(path string, r Results) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("selfplay: results dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("selfplay: write results: %w", err)
	}
	return os.Rename(tmp, path)
}
