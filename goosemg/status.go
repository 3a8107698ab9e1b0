package goosemg

// Result is the game result from White's point of view.
type Result uint8

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN result token.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Winner returns the winning color and true, or false for draws and ongoing games.
func (r Result) Winner() (Color, bool) {
	switch r {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

// Reason explains why a game ended.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonMissingKing
	ReasonCheckmate
	ReasonStalemate
	ReasonInsufficientMaterial
	ReasonRepetition
	ReasonFiftyMove
)

var reasonNames = [...]string{
	ReasonNone:                 "none",
	ReasonMissingKing:          "missing king",
	ReasonCheckmate:            "checkmate",
	ReasonStalemate:            "stalemate",
	ReasonInsufficientMaterial: "insufficient material",
	ReasonRepetition:           "threefold repetition",
	ReasonFiftyMove:            "fifty-move rule",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Outcome is a game status together with the rule that produced it.
type Outcome struct {
	Result Result
	Reason Reason
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool { return o.Result != Ongoing }

func (o Outcome) String() string {
	if !o.Over() {
		return "*"
	}
	return o.Result.String() + " (" + o.Reason.String() + ")"
}

const fiftyMoveLimit = 100

// Status evaluates the termination rules for the side to move. reps may be
// nil, in which case repetition is never reported.
//
// When several rules apply at once the first in this order wins:
// missing king, checkmate/stalemate, insufficient material, threefold
// repetition, fifty-move rule.
func (b *Board) Status(reps *RepetitionTable) Outcome {
	us := b.sideToMove
	switch {
	case b.KingSquare(us) == NoSquare && b.KingSquare(us.Other()) == NoSquare:
		return Outcome{Draw, ReasonMissingKing}
	case b.KingSquare(us) == NoSquare:
		return Outcome{winnerResult(us.Other()), ReasonMissingKing}
	case b.KingSquare(us.Other()) == NoSquare:
		return Outcome{winnerResult(us), ReasonMissingKing}
	}

	if !b.HasLegalMoves() {
		if b.InCheck(us) {
			return Outcome{winnerResult(us.Other()), ReasonCheckmate}
		}
		return Outcome{Draw, ReasonStalemate}
	}

	if _, w := b.countPieces(White); w == 0 {
		if _, bl := b.countPieces(Black); bl == 0 {
			return Outcome{Draw, ReasonInsufficientMaterial}
		}
	}

	if reps.Count(b.LayoutKey()) >= 3 {
		return Outcome{Draw, ReasonRepetition}
	}

	if b.halfmoveClock >= fiftyMoveLimit {
		return Outcome{Draw, ReasonFiftyMove}
	}
	return Outcome{}
}

func winnerResult(c Color) Result {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}
