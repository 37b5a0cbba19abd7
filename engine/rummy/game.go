package rummy

import (
	"fmt"
	"slices"

	"github.com/casualarcade/arcade/engine"
	"github.com/sirupsen/logrus"
)

const title = "rummy"

// Phase is where the player to move is within a turn or round.
type Phase uint8

const (
	PhaseDraw Phase = iota
	PhaseDiscard
	PhaseRoundOver
	PhaseGameOver
)

func (p Phase) String() string {
	return [...]string{"draw", "discard", "round_over", "game_over"}[p]
}

// Player seats. The human always sits in seat 0.
const (
	Human = 0
	AI    = 1
)

// RoundResult summarises how a round ended. Winner is -1 for a void round.
type RoundResult struct {
	Knocker          int
	Winner           int
	Points           int
	Gin              bool
	Undercut         bool
	KnockerDeadwood  int
	DefenderDeadwood int
	KnockerMelds     []Meld
	LaidOff          []Card
}

// Game is a match of gin rummy played to Rules.Target.
type Game struct {
	rules      Rules
	hands      [2][]Card
	stock      *engine.Deck
	discard    []Card
	turn       int
	dealer     int
	phase      Phase
	drewUp     Card // card taken from the discard pile this turn; may not be thrown back
	picks      [2][]Card
	scores     [2]int
	result     *RoundResult
	round      int
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New deals the first round. The human is the non-dealer and moves first.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{rules: DefaultRules(), seed: seed, difficulty: d}
	g.Reset()
	return g
}

// Reset starts a new match with zero scores.
func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.scores = [2]int{}
	g.round = 0
	g.dealer = AI
	g.deal()
}

// SetDifficulty changes the opponent policy and resets the match.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) deal() {
	g.stock = engine.NewShuffledDeck(g.rng)
	g.hands = [2][]Card{}
	g.picks = [2][]Card{}
	for i := 0; i < g.rules.HandSize; i++ {
		for p := 0; p < 2; p++ {
			c, _ := g.stock.Draw()
			g.hands[p] = append(g.hands[p], c)
		}
	}
	up, _ := g.stock.Draw()
	g.discard = []Card{up}
	g.turn = 1 - g.dealer
	g.phase = PhaseDraw
	g.drewUp = engine.NoCard
	g.result = nil
	g.round++
}

// NewRound deals the next round after a round has ended. The deal alternates.
func (g *Game) NewRound() error {
	switch g.phase {
	case PhaseGameOver:
		return engine.Reject(title, "new_round", engine.ErrGameOver)
	case PhaseRoundOver:
	default:
		return engine.Reject(title, "new_round", engine.ErrWrongPhase)
	}
	g.dealer = 1 - g.dealer
	g.deal()
	return nil
}

func (g *Game) Title() string                 { return title }
func (g *Game) Rules() Rules                  { return g.rules }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Turn() int                     { return g.turn }
func (g *Game) Phase() Phase                  { return g.phase }
func (g *Game) Round() int                    { return g.round }
func (g *Game) Scores() [2]int                { return g.scores }
func (g *Game) StockLen() int                 { return g.stock.Len() }
func (g *Game) IsOver() bool                  { return g.phase == PhaseGameOver }

// Hand returns a copy of seat p's cards.
func (g *Game) Hand(p int) []Card { return slices.Clone(g.hands[p]) }

// DiscardPile returns the pile bottom first.
func (g *Game) DiscardPile() []Card { return slices.Clone(g.discard) }

// TopDiscard is the face-up card, or NoCard.
func (g *Game) TopDiscard() Card {
	if len(g.discard) == 0 {
		return engine.NoCard
	}
	return g.discard[len(g.discard)-1]
}

// LastResult is the outcome of the most recent finished round, or nil.
func (g *Game) LastResult() *RoundResult { return g.result }

// Outcome reports the match result from the human's side.
func (g *Game) Outcome() engine.Outcome {
	if g.phase != PhaseGameOver {
		return engine.InProgress
	}
	switch {
	case g.scores[Human] > g.scores[AI]:
		return engine.WinSideOne
	case g.scores[AI] > g.scores[Human]:
		return engine.WinSideTwo
	}
	return engine.Draw
}

// CardCount totals stock, discard pile and both hands.
func (g *Game) CardCount() int {
	return g.stock.Len() + len(g.discard) + len(g.hands[0]) + len(g.hands[1])
}

func (g *Game) checkTurn(action string, want Phase) error {
	if g.phase == PhaseGameOver || g.phase == PhaseRoundOver {
		return engine.Reject(title, action, engine.ErrGameOver)
	}
	if g.phase != want {
		return engine.Reject(title, action, engine.ErrWrongPhase)
	}
	return nil
}

// DrawStock takes the top card of the stock.
func (g *Game) DrawStock() error {
	if err := g.checkTurn("draw_stock", PhaseDraw); err != nil {
		return err
	}
	c, ok := g.stock.Draw()
	if !ok {
		return engine.Reject(title, "draw_stock", engine.ErrIllegalMove)
	}
	g.hands[g.turn] = append(g.hands[g.turn], c)
	g.drewUp = engine.NoCard
	g.phase = PhaseDiscard
	return nil
}

// DrawDiscard takes the face-up card. It may not be discarded again this turn.
func (g *Game) DrawDiscard() error {
	if err := g.checkTurn("draw_discard", PhaseDraw); err != nil {
		return err
	}
	if len(g.discard) == 0 {
		return engine.Reject(title, "draw_discard", engine.ErrIllegalMove)
	}
	c := g.discard[len(g.discard)-1]
	g.discard = g.discard[:len(g.discard)-1]
	g.hands[g.turn] = append(g.hands[g.turn], c)
	g.picks[g.turn] = append(g.picks[g.turn], c)
	g.drewUp = c
	g.phase = PhaseDiscard
	return nil
}

func (g *Game) checkDiscard(action string, i int) error {
	if err := g.checkTurn(action, PhaseDiscard); err != nil {
		return err
	}
	if i < 0 || i >= len(g.hands[g.turn]) {
		return engine.Reject(title, action, fmt.Errorf("%w: card index %d", engine.ErrInvalidArgument, i))
	}
	if g.hands[g.turn][i] == g.drewUp {
		return engine.Reject(title, action, fmt.Errorf("%w: %s was just taken from the pile", engine.ErrIllegalMove, g.drewUp))
	}
	return nil
}

func (g *Game) throw(i int) Card {
	h := g.hands[g.turn]
	c := h[i]
	g.hands[g.turn] = append(h[:i:i], h[i+1:]...)
	g.discard = append(g.discard, c)
	return c
}

// Discard throws card i and ends the turn. When the stock has run down to
// Rules.MinStock the round is void.
func (g *Game) Discard(i int) (engine.TurnResult, error) {
	if err := g.checkDiscard("discard", i); err != nil {
		return engine.TurnSwitch, err
	}
	g.throw(i)
	if g.stock.Len() <= g.rules.MinStock {
		g.result = &RoundResult{Knocker: -1, Winner: -1}
		g.phase = PhaseRoundOver
		engine.Log().WithFields(logrus.Fields{"game": title, "round": g.round}).Debug("stock exhausted, round void")
		return engine.TurnRoundOver, nil
	}
	g.turn = 1 - g.turn
	g.phase = PhaseDraw
	return engine.TurnSwitch, nil
}

// CanKnock reports whether throwing card i would leave deadwood within the limit.
func (g *Game) CanKnock(i int) bool {
	if g.checkDiscardQuiet(i) != nil {
		return false
	}
	rest := without(g.hands[g.turn], i)
	return DeadwoodValue(rest) <= g.rules.KnockLimit
}

func (g *Game) checkDiscardQuiet(i int) error {
	if g.phase != PhaseDiscard || i < 0 || i >= len(g.hands[g.turn]) || g.hands[g.turn][i] == g.drewUp {
		return engine.ErrIllegalMove
	}
	return nil
}

func without(hand []Card, i int) []Card {
	out := make([]Card, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	return append(out, hand[i+1:]...)
}

// Knock throws card i face down and ends the round, scoring both hands.
func (g *Game) Knock(i int) (engine.TurnResult, error) {
	if err := g.checkDiscard("knock", i); err != nil {
		return engine.TurnSwitch, err
	}
	if dw := DeadwoodValue(without(g.hands[g.turn], i)); dw > g.rules.KnockLimit {
		return engine.TurnSwitch, engine.Reject(title, "knock", fmt.Errorf("%w: deadwood %d over %d", engine.ErrIllegalMove, dw, g.rules.KnockLimit))
	}
	g.throw(i)
	res := g.score(g.turn)
	g.result = &res
	g.scores[res.Winner] += res.Points
	engine.Log().WithFields(logrus.Fields{
		"game": title, "round": g.round, "knocker": res.Knocker, "winner": res.Winner,
		"points": res.Points, "gin": res.Gin, "undercut": res.Undercut,
	}).Debug("round scored")
	if g.scores[res.Winner] >= g.rules.Target {
		g.phase = PhaseGameOver
		return engine.TurnGameOver, nil
	}
	g.phase = PhaseRoundOver
	return engine.TurnRoundOver, nil
}

// score resolves a knock. After gin the defender may not lay off.
func (g *Game) score(knocker int) RoundResult {
	defender := 1 - knocker
	kMelds, kDead := FindOptimalMelds(g.hands[knocker])
	_, dDead := FindOptimalMelds(g.hands[defender])
	res := RoundResult{Knocker: knocker, KnockerMelds: kMelds, KnockerDeadwood: Deadwood(kDead)}

	if res.KnockerDeadwood == 0 {
		res.Gin = true
		res.DefenderDeadwood = Deadwood(dDead)
		res.Winner = knocker
		res.Points = g.rules.GinBonus + res.DefenderDeadwood
		return res
	}
	extended, laid, remaining := LayOff(kMelds, dDead)
	res.KnockerMelds = extended
	res.LaidOff = laid
	res.DefenderDeadwood = Deadwood(remaining)
	if res.KnockerDeadwood < res.DefenderDeadwood {
		res.Winner = knocker
		res.Points = res.DefenderDeadwood - res.KnockerDeadwood
		return res
	}
	res.Undercut = true
	res.Winner = defender
	res.Points = g.rules.UndercutBonus + res.KnockerDeadwood - res.DefenderDeadwood
	return res
}

// AIToMove reports whether the computer seat should act.
func (g *Game) AIToMove() bool {
	return (g.phase == PhaseDraw || g.phase == PhaseDiscard) && g.turn == AI
}

// PerformAIMove plays the whole turn of the seat to move: draw, then discard or knock.
func (g *Game) PerformAIMove() bool {
	if g.phase != PhaseDraw && g.phase != PhaseDiscard {
		return false
	}
	p := g.turn
	if g.phase == PhaseDraw {
		var err error
		if ChooseDraw(g.hands[p], g.TopDiscard(), g.difficulty) {
			err = g.DrawDiscard()
		} else {
			err = g.DrawStock()
		}
		if err != nil {
			return false
		}
	}
	i, knock := ChooseDiscard(g.hands[p], g.drewUp, g.picks[1-p], g.rules, g.difficulty, g.rng)
	if knock {
		_, err := g.Knock(i)
		return err == nil
	}
	_, err := g.Discard(i)
	return err == nil
}

func (g *Game) Status() string {
	who := func(p int) string {
		if p == Human {
			return "You"
		}
		return "Computer"
	}
	switch g.phase {
	case PhaseGameOver:
		return fmt.Sprintf("Game over: %d to %d", g.scores[Human], g.scores[AI])
	case PhaseRoundOver:
		r := g.result
		switch {
		case r == nil || r.Winner < 0:
			return "Round void: stock exhausted"
		case r.Gin:
			return fmt.Sprintf("%s went gin for %d", who(r.Winner), r.Points)
		case r.Undercut:
			return fmt.Sprintf("%s undercut for %d", who(r.Winner), r.Points)
		}
		return fmt.Sprintf("%s knocked and scored %d", who(r.Winner), r.Points)
	case PhaseDraw:
		return who(g.turn) + ": draw a card"
	}
	return who(g.turn) + ": discard or knock"
}
