package chess

// Apply returns the position after m. The receiver is not modified; the
// rights table is updated: castling rights drop when a king or rook moves or a
// rook is captured on its corner, the en-passant target lives for exactly one
// reply, and the half-move clock resets on captures and pawn moves.
func (p *Position) Apply(m Move) Position {
	next := *p
	b := &next.Board
	pc := b[m.From]

	b[m.From] = NoPiece
	if m.Is(FlagEnPassant) {
		b[Square(Row(m.From), Col(m.To))] = NoPiece
	}
	if m.Promo != NoPieceType {
		b[m.To] = MakePiece(pc.Color(), m.Promo)
	} else {
		b[m.To] = pc
	}
	if m.Is(FlagCastle) {
		for _, cr := range castleRules {
			if cr.king == m.From && cr.to == m.To {
				rookTo := (m.From + m.To) / 2
				b[rookTo] = b[cr.rook]
				b[cr.rook] = NoPiece
			}
		}
	}

	next.Rights.Castling &^= rightsTouched(m.From) | rightsTouched(m.To)

	next.Rights.EnPassant = -1
	if m.Is(FlagDoublePush) {
		next.Rights.EnPassant = (m.From + m.To) / 2
	}

	if pc.Type() == Pawn || m.Is(FlagCapture) {
		next.Rights.HalfMoveClock = 0
	} else {
		next.Rights.HalfMoveClock++
	}
	if p.Turn == Black {
		next.Rights.FullMove++
	}
	next.Turn = p.Turn.Other()
	return next
}

// rightsTouched lists castling rights lost when a piece leaves or arrives on sq.
func rightsTouched(sq int) uint8 {
	switch sq {
	case 60:
		return CastleWhiteKing | CastleWhiteQueen
	case 63:
		return CastleWhiteKing
	case 56:
		return CastleWhiteQueen
	case 4:
		return CastleBlackKing | CastleBlackQueen
	case 7:
		return CastleBlackKing
	case 0:
		return CastleBlackQueen
	}
	return 0
}

// Status classifies the position for the side to move.
func (p *Position) Status() Status {
	if !p.HasLegalMove() {
		if p.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if p.Rights.HalfMoveClock >= 100 {
		return FiftyMoveDraw
	}
	if p.insufficientMaterial() {
		return InsufficientMaterial
	}
	return Ongoing
}

// insufficientMaterial covers K v K and K+minor v K.
func (p *Position) insufficientMaterial() bool {
	minors := 0
	for _, pc := range p.Board {
		switch pc.Type() {
		case NoPieceType, King:
		case Knight, Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
