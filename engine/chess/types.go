// Package chess implements full-legality chess: pseudo-legal generation per
// piece, king-safety filtering, castling, en passant, promotion, the fifty-move
// rule, and an alpha-beta opponent over piece-square evaluation.
//
// Squares are 0..63 with 0 = a8 and 63 = h1 (index = row*8 + col, row 0 is rank 8).
package chess

import "fmt"

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is the kind of a piece, independent of colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var typeLetters = [...]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

// Piece packs colour (bit 3) and type (bits 0-2). Zero is an empty square.
type Piece uint8

const NoPiece Piece = 0

// MakePiece builds a coloured piece.
func MakePiece(c Color, t PieceType) Piece { return Piece(uint8(c)<<3 | uint8(t)) }

func (p Piece) Type() PieceType { return PieceType(p & 7) }
func (p Piece) Color() Color    { return Color(p >> 3) }

// Letter is the FEN letter: upper case for white.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return '.'
	}
	l := typeLetters[p.Type()]
	if p.Color() == White {
		l -= 'a' - 'A'
	}
	return l
}

// Board holds the pieces only; side to move and rights live in Position.
type Board [64]Piece

// Square helpers.
func Row(sq int) int          { return sq / 8 }
func Col(sq int) int          { return sq % 8 }
func Square(row, col int) int { return row*8 + col }

// SquareName renders 0 as "a8" and 63 as "h1".
func SquareName(sq int) string {
	if sq < 0 || sq > 63 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+Col(sq), '8'-Row(sq))
}

// ParseSquare reads algebraic coordinates such as "e4".
func ParseSquare(s string) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return -1, fmt.Errorf("bad square %q", s)
	}
	return Square(int('8'-s[1]), int(s[0]-'a')), nil
}

// Castling right bits.
const (
	CastleWhiteKing uint8 = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// Rights is the side table of state that is not visible on the board.
type Rights struct {
	Castling      uint8
	EnPassant     int // target square behind a double-pushed pawn, -1 if none
	HalfMoveClock int // plies since the last capture or pawn move
	FullMove      int
}

// Position is a complete game state: board, side to move, and rights.
type Position struct {
	Board  Board
	Turn   Color
	Rights Rights
}

// MoveFlag marks special moves.
type MoveFlag uint8

const (
	FlagCapture MoveFlag = 1 << iota
	FlagEnPassant
	FlagCastle
	FlagDoublePush
	FlagPromotion
)

// Move is a candidate transition. Captured holds the piece taken, if any.
type Move struct {
	From, To int
	Promo    PieceType
	Flags    MoveFlag
	Piece    Piece
	Captured Piece
}

func (m Move) Is(f MoveFlag) bool { return m.Flags&f != 0 }

// String renders coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := SquareName(m.From) + SquareName(m.To)
	if m.Promo != NoPieceType {
		s += string(typeLetters[m.Promo])
	}
	return s
}

// Status is the terminal classification of a position.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
)

func (s Status) String() string {
	return [...]string{"ongoing", "checkmate", "stalemate", "fifty-move draw", "insufficient material"}[s]
}
