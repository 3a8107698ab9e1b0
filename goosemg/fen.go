package goosemg

import (
	"errors"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieces = map[rune]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

const canonicalCastling = "KQkq"

var castlingFlags = map[byte]CastlingRights{
	'K': CastlingWhiteK, 'Q': CastlingWhiteQ, 'k': CastlingBlackK, 'q': CastlingBlackQ,
}

// pieceChars is indexed by Piece.
var pieceChars = [16]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// String returns the FEN letter of the piece, or "." for NoPiece.
func (p Piece) String() string {
	if c := pieceChars[p&15]; c != 0 {
		return string(c)
	}
	return "."
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The clock fields are optional and default to "0 1".
// Returns an error if the FEN is invalid or cannot be parsed.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}
	if len(fields) > 6 {
		return nil, errors.New("invalid FEN: too many fields")
	}

	board := NewEmptyBoard()
	board.omitClocks = 6 - len(fields)

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("invalid FEN: empty rank description")
		}
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return nil, errors.New("invalid FEN: too many squares in rank")
				}
				continue
			}
			piece, ok := fenPieces[ch]
			if !ok {
				return nil, errors.New("invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many squares in rank")
			}
			board.pieces[NewSquare(file, rank)] = piece
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var flag CastlingRights
			switch ch {
			case 'K':
				flag = CastlingWhiteK
			case 'Q':
				flag = CastlingWhiteQ
			case 'k':
				flag = CastlingBlackK
			case 'q':
				flag = CastlingBlackQ
			default:
				return nil, errors.New("invalid FEN: invalid castling rights character")
			}
			if board.castlingRights&flag != 0 {
				return nil, errors.New("invalid FEN: repeated castling rights character")
			}
			board.castlingRights |= flag
		}
		board.castlingOrder = fields[2]
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, errors.New("invalid FEN: invalid en passant square")
		}
		if r := sq.Rank(); r != 2 && r != 5 {
			return nil, errors.New("invalid FEN: en passant square out of range")
		}
		board.enPassantSquare = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, errors.New("invalid FEN: halfmove clock is not a number")
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, errors.New("invalid FEN: fullmove number is not a number")
		}
		board.fullmoveNumber = fullmove
	}

	return board, nil
}

// ToFEN produces the FEN string representation of the board's current state.
// Fields that did not change since ParseFEN come back as they were read: the
// castling letters keep their order, and clock fields missing from the input
// stay missing while they hold their default "0 1".
func (b *Board) ToFEN() string {
	var sb strings.Builder
	b.writeLayout(&sb, false)
	fullmove := b.omitClocks < 1 || b.fullmoveNumber != 1
	halfmove := fullmove || b.omitClocks < 2 || b.halfmoveClock != 0
	if halfmove {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(b.halfmoveClock))
	}
	if fullmove {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	}
	return sb.String()
}

// LayoutKey returns the first four FEN fields (placement, side, castling,
// en passant). Two positions with the same key are the same position for
// repetition purposes.
func (b *Board) LayoutKey() string {
	var sb strings.Builder
	b.writeLayout(&sb, true)
	return sb.String()
}

// writeLayout writes the first four FEN fields. With canonical set the
// castling letters are always in KQkq order.
func (b *Board) writeLayout(sb *strings.Builder, canonical bool) {
	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[NewSquare(file, rank)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(pieceChars[p])
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		order := canonicalCastling
		if !canonical && b.castlingOrder != "" {
			order = b.castlingOrder + canonicalCastling
		}
		var written CastlingRights
		for i := 0; i < len(order); i++ {
			flag := castlingFlags[order[i]]
			if b.castlingRights&flag != 0 && written&flag == 0 {
				sb.WriteByte(order[i])
				written |= flag
			}
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.enPassantSquare.String())
}
