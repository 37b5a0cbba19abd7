package chess

var (
	knightSteps = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonals   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straights   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

var promoTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func onBoard(r, c int) bool { return r >= 0 && r < 8 && c >= 0 && c < 8 }

// pawnDir is the row delta of a pawn advance.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// IsAttacked reports whether sq is attacked by any piece of colour by.
func (b *Board) IsAttacked(sq int, by Color) bool {
	r, c := Row(sq), Col(sq)

	// Pawns attack diagonally forward, so look one row behind from the target's view.
	pr := r - pawnDir(by)
	for _, dc := range [2]int{-1, 1} {
		if onBoard(pr, c+dc) && b[Square(pr, c+dc)] == MakePiece(by, Pawn) {
			return true
		}
	}
	for _, s := range knightSteps {
		if onBoard(r+s[0], c+s[1]) && b[Square(r+s[0], c+s[1])] == MakePiece(by, Knight) {
			return true
		}
	}
	for _, s := range kingSteps {
		if onBoard(r+s[0], c+s[1]) && b[Square(r+s[0], c+s[1])] == MakePiece(by, King) {
			return true
		}
	}
	if b.slidingAttack(r, c, diagonals[:], MakePiece(by, Bishop), MakePiece(by, Queen)) {
		return true
	}
	return b.slidingAttack(r, c, straights[:], MakePiece(by, Rook), MakePiece(by, Queen))
}

func (b *Board) slidingAttack(r, c int, dirs [][2]int, slider, queen Piece) bool {
	for _, d := range dirs {
		nr, nc := r+d[0], c+d[1]
		for onBoard(nr, nc) {
			p := b[Square(nr, nc)]
			if p != NoPiece {
				if p == slider || p == queen {
					return true
				}
				break
			}
			nr += d[0]
			nc += d[1]
		}
	}
	return false
}

// KingSquare finds the king of colour c, or -1.
func (b *Board) KingSquare(c Color) int {
	k := MakePiece(c, King)
	for sq, p := range b {
		if p == k {
			return sq
		}
	}
	return -1
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	k := p.Board.KingSquare(p.Turn)
	return k >= 0 && p.Board.IsAttacked(k, p.Turn.Other())
}

// PseudoLegalMoves generates moves that obey piece movement but may leave the
// mover's king attacked. Castling already requires unattacked transit squares.
func (p *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for sq, pc := range p.Board {
		if pc == NoPiece || pc.Color() != p.Turn {
			continue
		}
		switch pc.Type() {
		case Pawn:
			moves = p.pawnMoves(moves, sq, pc)
		case Knight:
			moves = p.stepMoves(moves, sq, pc, knightSteps[:])
		case Bishop:
			moves = p.slideMoves(moves, sq, pc, diagonals[:])
		case Rook:
			moves = p.slideMoves(moves, sq, pc, straights[:])
		case Queen:
			moves = p.slideMoves(moves, sq, pc, diagonals[:])
			moves = p.slideMoves(moves, sq, pc, straights[:])
		case King:
			moves = p.stepMoves(moves, sq, pc, kingSteps[:])
			moves = p.castleMoves(moves, sq, pc)
		}
	}
	return moves
}

func (p *Position) target(moves []Move, from, to int, pc Piece) ([]Move, bool) {
	occ := p.Board[to]
	if occ == NoPiece {
		return append(moves, Move{From: from, To: to, Piece: pc}), true
	}
	if occ.Color() != pc.Color() {
		moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: occ, Flags: FlagCapture})
	}
	return moves, false
}

func (p *Position) stepMoves(moves []Move, sq int, pc Piece, steps [][2]int) []Move {
	r, c := Row(sq), Col(sq)
	for _, s := range steps {
		if onBoard(r+s[0], c+s[1]) {
			moves, _ = p.target(moves, sq, Square(r+s[0], c+s[1]), pc)
		}
	}
	return moves
}

// slideMoves walks each direction until the edge or a blocker, including the
// blocker only when it is an opponent piece.
func (p *Position) slideMoves(moves []Move, sq int, pc Piece, dirs [][2]int) []Move {
	r, c := Row(sq), Col(sq)
	for _, d := range dirs {
		nr, nc := r+d[0], c+d[1]
		for onBoard(nr, nc) {
			var open bool
			moves, open = p.target(moves, sq, Square(nr, nc), pc)
			if !open {
				break
			}
			nr += d[0]
			nc += d[1]
		}
	}
	return moves
}

func addPawnMove(moves []Move, m Move) []Move {
	if r := Row(m.To); r == 0 || r == 7 {
		for _, t := range promoTypes {
			pm := m
			pm.Promo = t
			pm.Flags |= FlagPromotion
			moves = append(moves, pm)
		}
		return moves
	}
	return append(moves, m)
}

func (p *Position) pawnMoves(moves []Move, sq int, pc Piece) []Move {
	r, c := Row(sq), Col(sq)
	dir := pawnDir(pc.Color())
	startRow := 6
	if pc.Color() == Black {
		startRow = 1
	}
	if onBoard(r+dir, c) && p.Board[Square(r+dir, c)] == NoPiece {
		moves = addPawnMove(moves, Move{From: sq, To: Square(r+dir, c), Piece: pc})
		if r == startRow && p.Board[Square(r+2*dir, c)] == NoPiece {
			moves = append(moves, Move{From: sq, To: Square(r+2*dir, c), Piece: pc, Flags: FlagDoublePush})
		}
	}
	for _, dc := range [2]int{-1, 1} {
		if !onBoard(r+dir, c+dc) {
			continue
		}
		to := Square(r+dir, c+dc)
		occ := p.Board[to]
		switch {
		case occ != NoPiece && occ.Color() != pc.Color():
			moves = addPawnMove(moves, Move{From: sq, To: to, Piece: pc, Captured: occ, Flags: FlagCapture})
		case occ == NoPiece && to == p.Rights.EnPassant:
			moves = append(moves, Move{
				From: sq, To: to, Piece: pc,
				Captured: MakePiece(pc.Color().Other(), Pawn),
				Flags:    FlagCapture | FlagEnPassant,
			})
		}
	}
	return moves
}

type castleRule struct {
	right    uint8
	king, to int
	rook     int
	empty    []int
	transit  []int // squares the king stands on or crosses, must be unattacked
	color    Color
}

var castleRules = [4]castleRule{
	{CastleWhiteKing, 60, 62, 63, []int{61, 62}, []int{60, 61, 62}, White},
	{CastleWhiteQueen, 60, 58, 56, []int{57, 58, 59}, []int{60, 59, 58}, White},
	{CastleBlackKing, 4, 6, 7, []int{5, 6}, []int{4, 5, 6}, Black},
	{CastleBlackQueen, 4, 2, 0, []int{1, 2, 3}, []int{4, 3, 2}, Black},
}

func (p *Position) castleMoves(moves []Move, sq int, pc Piece) []Move {
	for _, cr := range castleRules {
		if cr.color != pc.Color() || sq != cr.king || p.Rights.Castling&cr.right == 0 {
			continue
		}
		if p.Board[cr.rook] != MakePiece(cr.color, Rook) {
			continue
		}
		ok := true
		for _, e := range cr.empty {
			if p.Board[e] != NoPiece {
				ok = false
				break
			}
		}
		for _, t := range cr.transit {
			if !ok {
				break
			}
			if p.Board.IsAttacked(t, cr.color.Other()) {
				ok = false
			}
		}
		if ok {
			moves = append(moves, Move{From: sq, To: cr.to, Piece: pc, Flags: FlagCastle})
		}
	}
	return moves
}

// LegalMoves filters pseudo-legal moves, dropping any that leave the mover's king attacked.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		next := p.Apply(m)
		k := next.Board.KingSquare(p.Turn)
		if k >= 0 && !next.Board.IsAttacked(k, next.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove is an early-exit LegalMoves() != nil.
func (p *Position) HasLegalMove() bool {
	for _, m := range p.PseudoLegalMoves() {
		next := p.Apply(m)
		k := next.Board.KingSquare(p.Turn)
		if k >= 0 && !next.Board.IsAttacked(k, next.Turn) {
			return true
		}
	}
	return false
}
