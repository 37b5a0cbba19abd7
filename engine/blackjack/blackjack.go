// Package blackjack implements single-deck blackjack against a rule-driven dealer.
package blackjack

import (
	"fmt"
	"slices"

	"github.com/casualarcade/arcade/engine"
	"github.com/sirupsen/logrus"
)

const title = "blackjack"

// Table constants.
const (
	StartChips     = 1000
	MinBet         = 2
	ReshuffleBelow = 15
)

// Card is the shared playing card.
type Card = engine.Card

// HandValue totals cards, counting one ace as eleven when that does not bust.
// soft reports that an ace is currently counted as eleven.
func HandValue(cards []Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		switch r := int(c.Rank()); {
		case r == int(engine.RankAce):
			aces++
			total++
		case r >= int(engine.RankTen):
			total += 10
		default:
			total += r + 1
		}
	}
	if aces > 0 && total+10 <= 21 {
		return total + 10, true
	}
	return total, false
}

// IsBlackjack reports a two-card 21.
func IsBlackjack(cards []Card) bool {
	t, _ := HandValue(cards)
	return len(cards) == 2 && t == 21
}

// Phase of a round.
type Phase uint8

const (
	PhaseBetting Phase = iota
	PhasePlayer
	PhaseRoundOver
	PhaseGameOver
)

// Result is how the last round settled.
type Result uint8

const (
	NoResult Result = iota
	PlayerBlackjack
	PlayerWin
	DealerBust
	Push
	DealerWin
	PlayerBust
)

func (r Result) String() string {
	return [...]string{"", "Blackjack!", "You win", "Dealer busts", "Push", "Dealer wins", "Bust"}[r]
}

// Game is a blackjack session with a running chip stack.
type Game struct {
	deck       *engine.Deck
	discard    []Card
	player     []Card
	dealer     []Card
	chips      int
	bet        int
	phase      Phase
	result     Result
	hitSoft17  bool
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New opens a table with a fresh shuffled deck.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.deck = engine.NewShuffledDeck(g.rng)
	g.discard = nil
	g.player, g.dealer = nil, nil
	g.chips = StartChips
	g.bet = 0
	g.phase = PhaseBetting
	g.result = NoResult
	g.hitSoft17 = g.difficulty == engine.Hard
}

// SetDifficulty picks the dealer's soft-17 rule and resets the table.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Phase() Phase                  { return g.phase }
func (g *Game) Chips() int                    { return g.chips }
func (g *Game) CurrentBet() int               { return g.bet }
func (g *Game) Result() Result                { return g.result }
func (g *Game) IsOver() bool                  { return g.phase == PhaseGameOver }
func (g *Game) PlayerHand() []Card            { return slices.Clone(g.player) }
func (g *Game) DealerHitsSoft17() bool        { return g.hitSoft17 }

// DealerHand hides the hole card while the player is acting.
func (g *Game) DealerHand() []Card {
	if g.phase == PhasePlayer && len(g.dealer) > 1 {
		return []Card{g.dealer[0], engine.NoCard}
	}
	return slices.Clone(g.dealer)
}

// CardCount totals deck, discards and both hands.
func (g *Game) CardCount() int {
	return g.deck.Len() + len(g.discard) + len(g.player) + len(g.dealer)
}

// Outcome is a dealer win once the stack is gone; the table never ends otherwise.
func (g *Game) Outcome() engine.Outcome {
	if g.phase != PhaseGameOver {
		return engine.InProgress
	}
	return engine.WinSideTwo
}

func (g *Game) draw() Card {
	c, ok := g.deck.Draw()
	if !ok {
		g.reshuffle()
		c, _ = g.deck.Draw()
	}
	return c
}

// reshuffle returns discards to the deck. Cards in hand stay where they are.
func (g *Game) reshuffle() {
	g.deck.Put(g.discard...)
	g.discard = nil
	g.deck.Shuffle(g.rng)
	engine.Log().WithFields(logrus.Fields{"game": title, "cards": g.deck.Len()}).Debug("reshuffled")
}

// Bet stakes amount and deals a new round. Naturals settle at once.
// Bets are even so a 3:2 natural always pays whole chips.
func (g *Game) Bet(amount int) error {
	switch g.phase {
	case PhaseGameOver:
		return engine.Reject(title, "bet", engine.ErrGameOver)
	case PhasePlayer:
		return engine.Reject(title, "bet", engine.ErrWrongPhase)
	}
	if amount < MinBet || amount > g.chips {
		return engine.Reject(title, "bet", fmt.Errorf("%w: bet %d with %d chips", engine.ErrInvalidArgument, amount, g.chips))
	}
	if amount%2 != 0 {
		return engine.Reject(title, "bet", fmt.Errorf("%w: bet %d is odd", engine.ErrInvalidArgument, amount))
	}
	g.discard = append(g.discard, g.player...)
	g.discard = append(g.discard, g.dealer...)
	g.player, g.dealer = nil, nil
	if g.deck.Len() < ReshuffleBelow {
		g.reshuffle()
	}
	g.chips -= amount
	g.bet = amount
	g.result = NoResult
	g.player = append(g.player, g.draw())
	g.dealer = append(g.dealer, g.draw())
	g.player = append(g.player, g.draw())
	g.dealer = append(g.dealer, g.draw())
	g.phase = PhasePlayer

	if IsBlackjack(g.player) || IsBlackjack(g.dealer) {
		switch {
		case IsBlackjack(g.player) && IsBlackjack(g.dealer):
			g.settle(Push)
		case IsBlackjack(g.player):
			g.settle(PlayerBlackjack)
		default:
			g.settle(DealerWin)
		}
	}
	return nil
}

// Hit takes a card; busting ends the round.
func (g *Game) Hit() error {
	if err := g.checkPlayer("hit"); err != nil {
		return err
	}
	g.player = append(g.player, g.draw())
	if t, _ := HandValue(g.player); t > 21 {
		g.settle(PlayerBust)
	}
	return nil
}

// Stand ends the player's turn and plays the dealer out.
func (g *Game) Stand() error {
	if err := g.checkPlayer("stand"); err != nil {
		return err
	}
	g.playDealer()
	return nil
}

// DoubleDown doubles the bet on the first two cards, takes exactly one more
// card and stands.
func (g *Game) DoubleDown() error {
	if err := g.checkPlayer("double"); err != nil {
		return err
	}
	if len(g.player) != 2 || g.chips < g.bet {
		return engine.Reject(title, "double", engine.ErrIllegalMove)
	}
	g.chips -= g.bet
	g.bet *= 2
	g.player = append(g.player, g.draw())
	if t, _ := HandValue(g.player); t > 21 {
		g.settle(PlayerBust)
		return nil
	}
	g.playDealer()
	return nil
}

func (g *Game) checkPlayer(action string) error {
	switch g.phase {
	case PhasePlayer:
		return nil
	case PhaseGameOver:
		return engine.Reject(title, action, engine.ErrGameOver)
	}
	return engine.Reject(title, action, engine.ErrWrongPhase)
}

// DealerShouldHit applies the house rule: draw below 17, and on soft 17
// only when the table hits soft 17.
func DealerShouldHit(cards []Card, hitSoft17 bool) bool {
	t, soft := HandValue(cards)
	return t < 17 || t == 17 && soft && hitSoft17
}

func (g *Game) playDealer() {
	for DealerShouldHit(g.dealer, g.hitSoft17) {
		g.dealer = append(g.dealer, g.draw())
	}
	p, _ := HandValue(g.player)
	d, _ := HandValue(g.dealer)
	switch {
	case d > 21:
		g.settle(DealerBust)
	case p > d:
		g.settle(PlayerWin)
	case p == d:
		g.settle(Push)
	default:
		g.settle(DealerWin)
	}
}

func (g *Game) settle(r Result) {
	switch r {
	case PlayerBlackjack:
		g.chips += g.bet + g.bet*3/2
	case PlayerWin, DealerBust:
		g.chips += 2 * g.bet
	case Push:
		g.chips += g.bet
	}
	g.result = r
	g.bet = 0
	g.phase = PhaseRoundOver
	if g.chips < MinBet {
		g.phase = PhaseGameOver
	}
}

// AIToMove is always false: the dealer acts inside Stand.
func (g *Game) AIToMove() bool { return false }

// PerformAIMove plays the player's hand by a simple dealer-mimic strategy:
// bet the minimum between rounds, hit below 17, stand otherwise.
func (g *Game) PerformAIMove() bool {
	switch g.phase {
	case PhaseBetting, PhaseRoundOver:
		return g.Bet(MinBet) == nil
	case PhasePlayer:
		if DealerShouldHit(g.player, false) {
			return g.Hit() == nil
		}
		return g.Stand() == nil
	}
	return false
}

func (g *Game) Status() string {
	switch g.phase {
	case PhaseGameOver:
		return "Out of chips"
	case PhaseBetting:
		return fmt.Sprintf("Place a bet (%d chips)", g.chips)
	case PhaseRoundOver:
		return fmt.Sprintf("%s (%d chips)", g.result, g.chips)
	}
	t, soft := HandValue(g.player)
	if soft {
		return fmt.Sprintf("Soft %d: hit or stand", t)
	}
	return fmt.Sprintf("%d: hit or stand", t)
}
