package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/casualarcade/arcade/engine"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartPosition returns the standard initial position.
func StartPosition() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseFEN reads a Forsyth-Edwards string. The clocks are optional.
func ParseFEN(fen string) (Position, error) {
	var pos Position
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return pos, fmt.Errorf("%w: FEN needs at least 4 fields", engine.ErrInvalidArgument)
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return pos, fmt.Errorf("%w: FEN board needs 8 ranks", engine.ErrInvalidArgument)
	}
	for r, rowText := range rows {
		c := 0
		for _, ch := range rowText {
			switch {
			case ch >= '1' && ch <= '8':
				c += int(ch - '0')
			default:
				p, ok := pieceFromLetter(byte(ch))
				if !ok || c > 7 {
					return pos, fmt.Errorf("%w: FEN piece %q", engine.ErrInvalidArgument, ch)
				}
				pos.Board[Square(r, c)] = p
				c++
			}
		}
		if c != 8 {
			return pos, fmt.Errorf("%w: FEN rank %d has %d files", engine.ErrInvalidArgument, 8-r, c)
		}
	}
	switch fields[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		return pos, fmt.Errorf("%w: FEN side %q", engine.ErrInvalidArgument, fields[1])
	}
	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			pos.Rights.Castling |= CastleWhiteKing
		case 'Q':
			pos.Rights.Castling |= CastleWhiteQueen
		case 'k':
			pos.Rights.Castling |= CastleBlackKing
		case 'q':
			pos.Rights.Castling |= CastleBlackQueen
		case '-':
		default:
			return pos, fmt.Errorf("%w: FEN castling %q", engine.ErrInvalidArgument, fields[2])
		}
	}
	pos.Rights.EnPassant = -1
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return pos, fmt.Errorf("%w: %v", engine.ErrInvalidArgument, err)
		}
		pos.Rights.EnPassant = sq
	}
	pos.Rights.FullMove = 1
	if len(fields) >= 6 {
		hm, err1 := strconv.Atoi(fields[4])
		fm, err2 := strconv.Atoi(fields[5])
		if err1 != nil || err2 != nil {
			return pos, fmt.Errorf("%w: FEN clocks", engine.ErrInvalidArgument)
		}
		pos.Rights.HalfMoveClock, pos.Rights.FullMove = hm, fm
	}
	return pos, nil
}

func pieceFromLetter(b byte) (Piece, bool) {
	color := White
	if b >= 'a' && b <= 'z' {
		color = Black
	} else {
		b += 'a' - 'A'
	}
	for t := Pawn; t <= King; t++ {
		if typeLetters[t] == b {
			return MakePiece(color, t), true
		}
	}
	return NoPiece, false
}

// FEN renders the position.
func (p *Position) FEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for c := 0; c < 8; c++ {
			pc := p.Board[Square(r, c)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	if p.Turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	castle := ""
	for i, l := range "KQkq" {
		if p.Rights.Castling&(1<<i) != 0 {
			castle += string(l)
		}
	}
	if castle == "" {
		castle = "-"
	}
	sb.WriteString(castle)
	sb.WriteByte(' ')
	if p.Rights.EnPassant >= 0 {
		sb.WriteString(SquareName(p.Rights.EnPassant))
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.Rights.HalfMoveClock, p.Rights.FullMove)
	return sb.String()
}
