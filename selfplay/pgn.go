package selfplay

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/notnil/chess"

	gm "github.com/petthauk/chess-ml/goosemg"
)

// PGNWriter archives finished games as PGN files. Every game is replayed
// through github.com/notnil/chess first, so a move our rules accepted but
// an independent implementation rejects shows up as an error.
type PGNWriter struct {
	Dir   string
	Event string
}

// Encode replays rec and returns its PGN text.
func (w *PGNWriter) Encode(rec GameRecord, round int) (string, error) {
	var opts []func(*chess.Game)
	start, err := pgnFEN(rec.StartFEN)
	if err != nil {
		return "", fmt.Errorf("pgn: start position: %w", err)
	}
	if start != gm.FENStartPos {
		opt, err := chess.FEN(start)
		if err != nil {
			return "", fmt.Errorf("pgn: start position: %w", err)
		}
		opts = append(opts, opt)
	}
	game := chess.NewGame(opts...)
	event := w.Event
	if event == "" {
		event = "chess-ml self-play"
	}
	game.AddTagPair("Event", event)
	game.AddTagPair("Round", strconv.Itoa(round))
	game.AddTagPair("White", "chess-ml")
	game.AddTagPair("Black", "chess-ml")
	if start != gm.FENStartPos {
		game.AddTagPair("SetUp", "1")
		game.AddTagPair("FEN", start)
	}

	for i, m := range rec.Moves {
		cm, err := chess.UCINotation{}.Decode(game.Position(), m.String())
		if err != nil {
			return "", fmt.Errorf("pgn: ply %d %s: %w", i+1, m, err)
		}
		if err := game.Move(cm); err != nil {
			return "", fmt.Errorf("pgn: ply %d %s: %w", i+1, m, err)
		}
	}

	if err := closeGame(game, rec); err != nil {
		return "", err
	}
	game.AddTagPair("Result", rec.Result.String())
	game.AddTagPair("Termination", rec.Termination())
	return game.String(), nil
}

// pgnFEN spells out fen with all six fields and castling in KQkq order, the
// form PGN readers expect in a FEN tag.
func pgnFEN(fen string) (string, error) {
	b, err := gm.ParseFEN(fen)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d %d", b.LayoutKey(), b.HalfmoveClock(), b.FullmoveNumber()), nil
}

// closeGame records our result on the replayed game. Decisive endings the
// replay found by itself must agree with ours.
func closeGame(game *chess.Game, rec GameRecord) error {
	want := rec.Result.String()
	if out := game.Outcome(); out != chess.NoOutcome {
		if string(out) != want {
			return fmt.Errorf("pgn: replay ended %s, game ended %s", out, want)
		}
		return nil
	}
	switch rec.Result {
	case gm.WhiteWins:
		game.Resign(chess.Black)
	case gm.BlackWins:
		game.Resign(chess.White)
	case gm.Draw:
		method := chess.DrawOffer
		switch rec.Outcome.Reason {
		case gm.ReasonRepetition:
			method = chess.ThreefoldRepetition
		case gm.ReasonFiftyMove:
			method = chess.FiftyMoveRule
		}
		if err := game.Draw(method); err != nil {
			if err := game.Draw(chess.DrawOffer); err != nil {
				return fmt.Errorf("pgn: record draw: %w", err)
			}
		}
	}
	return nil
}

// Write stores rec as <Dir>/game-<round>.pgn and returns the file path.
func (w *PGNWriter) Write(rec GameRecord, round int) (string, error) {
	text, err := w.Encode(rec, round)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("pgn: %w", err)
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("game-%05d.pgn", round))
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("pgn: %w", err)
	}
	return path, nil
}
