package chess

import (
	"sort"
	"testing"

	"github.com/casualarcade/arcade/engine"
	nchess "github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameP3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

func perft(p *Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	n := 0
	for _, m := range moves {
		next := p.Apply(m)
		n += perft(&next, depth-1)
	}
	return n
}

func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"start d1", StartFEN, 1, 20},
		{"start d2", StartFEN, 2, 400},
		{"start d3", StartFEN, 3, 8902},
		{"kiwipete d1", kiwipete, 1, 48},
		{"kiwipete d2", kiwipete, 2, 2039},
		{"endgame d2", endgameP3, 2, 191},
		{"endgame d3", endgameP3, 3, 2812},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, perft(&pos, tc.depth))
		})
	}
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := nchess.FEN(fen)
	require.NoError(t, err)
	var out []string
	for _, m := range nchess.NewGame(opt).Position().ValidMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// Random playouts compare every visited position against an independent move generator.
func TestLegalMovesMatchReference(t *testing.T) {
	for _, start := range []string{StartFEN, kiwipete, endgameP3} {
		r := engine.NewRand(7)
		pos, err := ParseFEN(start)
		require.NoError(t, err)
		for ply := 0; ply < 40; ply++ {
			fen := pos.FEN()
			moves := pos.LegalMoves()
			require.Equal(t, referenceMoves(t, fen), moveStrings(moves), fen)
			if len(moves) == 0 {
				break
			}
			pos = pos.Apply(moves[r.Intn(len(moves))])
		}
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	r := engine.NewRand(99)
	for game := 0; game < 10; game++ {
		pos := StartPosition()
		for ply := 0; ply < 120 && pos.Status() == Ongoing; ply++ {
			moves := pos.LegalMoves()
			for _, m := range moves {
				next := pos.Apply(m)
				k := next.Board.KingSquare(pos.Turn)
				require.GreaterOrEqual(t, k, 0)
				require.False(t, next.Board.IsAttacked(k, next.Turn), "%s leaves king attacked in %s", m, pos.FEN())
			}
			pos = pos.Apply(moves[r.Intn(len(moves))])
		}
	}
}

func TestApplyDoesNotAlias(t *testing.T) {
	pos := StartPosition()
	before := pos
	m := pos.LegalMoves()[0]
	_ = pos.Apply(m)
	assert.Equal(t, before, pos)
}

func TestCastlingRights(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	var castles []string
	for _, m := range pos.LegalMoves() {
		if m.Is(FlagCastle) {
			castles = append(castles, m.String())
		}
	}
	assert.ElementsMatch(t, []string{"e1g1", "e1c1"}, castles)

	next := pos.Apply(Move{From: 60, To: 62, Piece: MakePiece(White, King), Flags: FlagCastle})
	assert.Equal(t, MakePiece(White, King), next.Board[62])
	assert.Equal(t, MakePiece(White, Rook), next.Board[61])
	assert.Equal(t, NoPiece, next.Board[63])
	assert.Equal(t, CastleBlackKing|CastleBlackQueen, next.Rights.Castling)

	// A rook leaving its corner drops only its own side's right.
	next = pos.Apply(Move{From: 56, To: 48, Piece: MakePiece(White, Rook)})
	assert.Equal(t, CastleWhiteKing|CastleBlackKing|CastleBlackQueen, next.Rights.Castling)
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	pos, err := ParseFEN("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	var castles []string
	for _, m := range pos.LegalMoves() {
		if m.Is(FlagCastle) {
			castles = append(castles, m.String())
		}
	}
	assert.Equal(t, []string{"e1c1"}, castles)
}

func TestEnPassant(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	var ep Move
	for _, m := range pos.LegalMoves() {
		if m.Is(FlagEnPassant) {
			ep = m
		}
	}
	require.Equal(t, "e5d6", ep.String())
	next := pos.Apply(ep)
	d5, _ := ParseSquare("d5")
	d6, _ := ParseSquare("d6")
	assert.Equal(t, NoPiece, next.Board[d5])
	assert.Equal(t, MakePiece(White, Pawn), next.Board[d6])
	assert.Equal(t, -1, next.Rights.EnPassant)
}

// The en-passant target lives for one reply only.
func TestEnPassantExpires(t *testing.T) {
	pos, err := ParseFEN("4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	d7, _ := ParseSquare("d7")
	d5, _ := ParseSquare("d5")
	pos = pos.Apply(Move{From: d7, To: d5, Piece: MakePiece(Black, Pawn), Flags: FlagDoublePush})
	d6, _ := ParseSquare("d6")
	assert.Equal(t, d6, pos.Rights.EnPassant)

	pos = pos.Apply(Move{From: 60, To: 61, Piece: MakePiece(White, King)})
	pos = pos.Apply(Move{From: 4, To: 3, Piece: MakePiece(Black, King)})
	for _, m := range pos.LegalMoves() {
		assert.False(t, m.Is(FlagEnPassant))
	}
}

func TestPromotionChoices(t *testing.T) {
	pos, err := ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	var promos []PieceType
	for _, m := range pos.LegalMoves() {
		if m.From == 8 {
			promos = append(promos, m.Promo)
		}
	}
	assert.ElementsMatch(t, []PieceType{Queen, Rook, Bishop, Knight}, promos)
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{StartFEN, kiwipete, endgameP3, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"} {
		pos, err := ParseFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, pos.FEN())
	}
	_, err := ParseFEN("8/8/8 w - -")
	assert.ErrorIs(t, err, engine.ErrInvalidArgument)
}
