package goosemg

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	// ErrIllegalMove is returned by Game.Play for a move not in the legal move list.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver is returned by Game.Play once the game has ended.
	ErrGameOver = errors.New("game is over")
	// ErrNothingToUndo is returned by Game.Undo at the start position.
	ErrNothingToUndo = errors.New("no move to undo")
)

// Game is a game session: the live board, the repetition table for the
// positions reached so far and the move history needed to undo them.
type Game struct {
	board    *Board
	reps     *RepetitionTable
	startFEN string
	states   []MoveState
}

// NewGame starts a session from fen (use FENStartPos for a normal game).
func NewGame(fen string) (*Game, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(b), nil
}

// NewGameFromBoard starts a session from a copy of b.
func NewGameFromBoard(b *Board) *Game {
	g := &Game{
		board:    b.Clone(),
		reps:     NewRepetitionTable(),
		startFEN: b.ToFEN(),
	}
	g.reps.Push(g.board.LayoutKey())
	return g
}

// Board returns the live position. Callers that explore variations must
// restore it (MakeMove/UnmakeMove) or work on a Clone.
func (g *Game) Board() *Board { return g.board }

// Repetitions returns the session's repetition table.
func (g *Game) Repetitions() *RepetitionTable { return g.reps }

// StartFEN returns the FEN the game started from.
func (g *Game) StartFEN() string { return g.startFEN }

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() Color { return g.board.sideToMove }

// Moves returns the moves played so far.
func (g *Game) Moves() []Move {
	out := make([]Move, len(g.states))
	for i, st := range g.states {
		out[i] = st.move
	}
	return out
}

// Ply returns the number of moves played in this session.
func (g *Game) Ply() int { return len(g.states) }

// Status evaluates termination for the live position.
func (g *Game) Status() Outcome { return g.board.Status(g.reps) }

// LegalMoves returns the legal moves of the live position.
func (g *Game) LegalMoves() []Move { return g.board.LegalMoves() }

// Play validates and applies m to the live position.
func (g *Game) Play(m Move) error {
	if g.Status().Over() {
		return ErrGameOver
	}
	if m.From < 0 || m.From > 63 || !slices.Contains(g.board.LegalMovesFrom(m.From), m) {
		return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, g.board.ToFEN())
	}
	g.push(m)
	return nil
}

// PlayString parses a long algebraic move and plays it.
func (g *Game) PlayString(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return g.Play(m)
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if len(g.states) == 0 {
		return ErrNothingToUndo
	}
	g.reps.Pop(g.board.LayoutKey())
	st := g.states[len(g.states)-1]
	g.states = g.states[:len(g.states)-1]
	g.board.UnmakeMove(st)
	return nil
}

func (g *Game) push(m Move) {
	g.states = append(g.states, g.board.MakeMove(m))
	g.reps.Push(g.board.LayoutKey())
}
