package president

import (
	"fmt"
	"slices"

	"github.com/casualarcade/arcade/engine"
	"github.com/sirupsen/logrus"
)

const title = "president"

// Seats and rules.
const (
	Players   = 4
	HumanSeat = 0
	// Rounds is the length of a match; titles score 3, 2, 1 and 0 points.
	Rounds = 5
)

// Title is a seat's rank earned from the previous round's finish order.
type Title uint8

const (
	NoTitle Title = iota
	President
	VicePresident
	ViceScum
	Scum
)

func (t Title) String() string {
	return [...]string{"", "President", "Vice-President", "Vice-Scum", "Scum"}[t]
}

// titleFor maps a finishing position onto a title.
func titleFor(pos int) Title { return Title(pos + 1) }

var titlePoints = [...]int{NoTitle: 0, President: 3, VicePresident: 2, ViceScum: 1, Scum: 0}

// Phase of the match.
type Phase uint8

const (
	PhasePlay Phase = iota
	PhaseRoundOver
	PhaseGameOver
)

// Exchange records cards handed over at the start of a round.
type Exchange struct {
	From, To int
	Cards    []Card
}

// Game is a match of President.
type Game struct {
	hands      [Players][]Card
	played     []Card
	pile       Play
	lastPlayer int
	passes     int
	turn       int
	finished   []int
	titles     [Players]Title
	scores     [Players]int
	exchanges  []Exchange
	round      int
	phase      Phase
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New deals the first round; the holder of the three of clubs leads.
func New(seed uint64, d engine.Difficulty) *Game {
	g := &Game{seed: seed, difficulty: d}
	g.Reset()
	return g
}

// Reset clears titles and scores and deals a fresh first round.
func (g *Game) Reset() {
	g.rng = engine.NewRand(g.seed)
	g.titles = [Players]Title{}
	g.scores = [Players]int{}
	g.round = 0
	g.deal()
}

// SetDifficulty changes the computer seats and resets the match.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	g.difficulty = d
	g.Reset()
}

func (g *Game) deal() {
	deck := engine.NewShuffledDeck(g.rng)
	for i := range g.hands {
		g.hands[i] = g.hands[i][:0]
	}
	for i := 0; deck.Len() > 0; i++ {
		c, _ := deck.Draw()
		g.hands[i%Players] = append(g.hands[i%Players], c)
	}
	for i := range g.hands {
		sortHand(g.hands[i])
	}
	g.played = nil
	g.pile = Play{}
	g.passes = 0
	g.finished = nil
	g.exchanges = nil
	g.round++
	g.phase = PhasePlay

	if g.round == 1 {
		threeClubs := engine.NewCard(engine.SuitClubs, engine.RankThree)
		for s := range g.hands {
			if slices.Contains(g.hands[s], threeClubs) {
				g.turn = s
			}
		}
	} else {
		g.exchange()
		g.turn = g.seatWith(President)
	}
	g.lastPlayer = g.turn
}

func (g *Game) seatWith(t Title) int {
	for s, x := range g.titles {
		if x == t {
			return s
		}
	}
	return 0
}

// exchange makes Scum hand the President its two best cards for the
// President's two worst, and Vice-Scum trade one with Vice-President.
func (g *Game) exchange() {
	swap := func(low, high Title, n int) {
		lo, hi := g.seatWith(low), g.seatWith(high)
		up := slices.Clone(g.hands[lo][len(g.hands[lo])-n:])
		down := slices.Clone(g.hands[hi][:n])
		g.hands[lo] = append(g.hands[lo][:len(g.hands[lo])-n], down...)
		g.hands[hi] = append(g.hands[hi][n:], up...)
		sortHand(g.hands[lo])
		sortHand(g.hands[hi])
		g.exchanges = append(g.exchanges, Exchange{From: lo, To: hi, Cards: up}, Exchange{From: hi, To: lo, Cards: down})
	}
	swap(Scum, President, 2)
	swap(ViceScum, VicePresident, 1)
}

// NewRound deals the next round after exchanging cards by title.
func (g *Game) NewRound() error {
	switch g.phase {
	case PhaseGameOver:
		return engine.Reject(title, "new_round", engine.ErrGameOver)
	case PhasePlay:
		return engine.Reject(title, "new_round", engine.ErrWrongPhase)
	}
	g.deal()
	return nil
}

func (g *Game) Title() string                 { return title }
func (g *Game) Difficulty() engine.Difficulty { return g.difficulty }
func (g *Game) Turn() int                     { return g.turn }
func (g *Game) Phase() Phase                  { return g.phase }
func (g *Game) Round() int                    { return g.round }
func (g *Game) Pile() Play                    { return Play{Cards: slices.Clone(g.pile.Cards)} }
func (g *Game) Titles() [Players]Title        { return g.titles }
func (g *Game) Scores() [Players]int          { return g.scores }
func (g *Game) IsOver() bool                  { return g.phase == PhaseGameOver }

// Hand returns a sorted copy of seat s's cards.
func (g *Game) Hand(s int) []Card { return slices.Clone(g.hands[s]) }

// FinishOrder lists seats that have emptied their hands this round.
func (g *Game) FinishOrder() []int { return slices.Clone(g.finished) }

// Exchanges lists the card swaps made at the start of this round.
func (g *Game) Exchanges() []Exchange { return slices.Clone(g.exchanges) }

// CardCount totals hands and played cards.
func (g *Game) CardCount() int {
	n := len(g.played)
	for _, h := range g.hands {
		n += len(h)
	}
	return n
}

// LegalPlays lists what the seat to move may play. Passing is legal whenever
// the pile is not empty.
func (g *Game) LegalPlays() []Play {
	if g.phase != PhasePlay {
		return nil
	}
	return LegalPlays(g.hands[g.turn], g.pile)
}

// Outcome ranks the human against the best computer score.
func (g *Game) Outcome() engine.Outcome {
	if g.phase != PhaseGameOver {
		return engine.InProgress
	}
	best := 0
	for s := 1; s < Players; s++ {
		best = max(best, g.scores[s])
	}
	switch {
	case g.scores[HumanSeat] > best:
		return engine.WinSideOne
	case g.scores[HumanSeat] < best:
		return engine.WinSideTwo
	}
	return engine.Draw
}

// Play lays the human's cards at the given hand indices.
func (g *Game) Play(indices []int) error {
	if g.turn != HumanSeat {
		return engine.Reject(title, "play", engine.ErrNotYourTurn)
	}
	hand := g.hands[HumanSeat]
	var cards []Card
	for _, i := range indices {
		if i < 0 || i >= len(hand) {
			return engine.Reject(title, "play", fmt.Errorf("%w: card index %d", engine.ErrInvalidArgument, i))
		}
		if slices.Contains(cards, hand[i]) {
			return engine.Reject(title, "play", fmt.Errorf("%w: duplicate index %d", engine.ErrInvalidArgument, i))
		}
		cards = append(cards, hand[i])
	}
	return g.PlayCards(HumanSeat, cards)
}

// PlayCards lays cards from seat's hand on the pile.
func (g *Game) PlayCards(seat int, cards []Card) error {
	if g.phase != PhasePlay {
		return engine.Reject(title, "play", engine.ErrGameOver)
	}
	if seat != g.turn {
		return engine.Reject(title, "play", engine.ErrNotYourTurn)
	}
	p := Play{Cards: slices.Clone(cards)}
	for i, c := range p.Cards {
		if slices.Contains(p.Cards[:i], c) {
			return engine.Reject(title, "play", fmt.Errorf("%w: duplicate card %v", engine.ErrInvalidArgument, c))
		}
		if Value(c) != p.Value() || !slices.Contains(g.hands[seat], c) {
			return engine.Reject(title, "play", fmt.Errorf("%w: %v", engine.ErrIllegalMove, cards))
		}
	}
	if len(p.Cards) > 4 || !p.Beats(g.pile) {
		return engine.Reject(title, "play", fmt.Errorf("%w: %v does not beat %v", engine.ErrIllegalMove, cards, g.pile.Cards))
	}

	g.hands[seat] = slices.DeleteFunc(g.hands[seat], func(c Card) bool { return slices.Contains(p.Cards, c) })
	g.played = append(g.played, p.Cards...)
	g.pile = p
	g.lastPlayer = seat
	g.passes = 0
	if len(g.hands[seat]) == 0 {
		g.finished = append(g.finished, seat)
		if g.activeCount() == 1 {
			g.endRound()
			return nil
		}
	}
	g.turn = g.nextActive(seat)
	return nil
}

// Pass declines to beat the pile. The leader may not pass.
func (g *Game) Pass() error { return g.PassSeat(HumanSeat) }

// PassSeat passes for seat. When every other active player has passed
// since the last play, the pile clears and its owner leads; if the owner
// has gone out, the next active seat leads.
func (g *Game) PassSeat(seat int) error {
	if g.phase != PhasePlay {
		return engine.Reject(title, "pass", engine.ErrGameOver)
	}
	if seat != g.turn {
		return engine.Reject(title, "pass", engine.ErrNotYourTurn)
	}
	if len(g.pile.Cards) == 0 {
		return engine.Reject(title, "pass", fmt.Errorf("%w: the leader must play", engine.ErrIllegalMove))
	}
	g.passes++
	need := g.activeCount()
	if g.active(g.lastPlayer) {
		need--
	}
	if g.passes >= need {
		g.pile = Play{}
		g.passes = 0
		if g.active(g.lastPlayer) {
			g.turn = g.lastPlayer
		} else {
			g.turn = g.nextActive(g.lastPlayer)
		}
		return nil
	}
	g.turn = g.nextActive(seat)
	return nil
}

func (g *Game) active(s int) bool { return len(g.hands[s]) > 0 }

func (g *Game) activeCount() int {
	n := 0
	for s := range g.hands {
		if g.active(s) {
			n++
		}
	}
	return n
}

func (g *Game) nextActive(from int) int {
	for i := 1; i <= Players; i++ {
		if s := (from + i) % Players; g.active(s) {
			return s
		}
	}
	return from
}

func (g *Game) endRound() {
	for s := range g.hands {
		if g.active(s) {
			// The last player's cards go to the played pile so counts stay whole.
			g.played = append(g.played, g.hands[s]...)
			g.hands[s] = g.hands[s][:0]
			g.finished = append(g.finished, s)
		}
	}
	for pos, s := range g.finished {
		g.titles[s] = titleFor(pos)
		g.scores[s] += titlePoints[g.titles[s]]
	}
	g.pile = Play{}
	engine.Log().WithFields(logrus.Fields{"game": title, "round": g.round, "order": fmt.Sprint(g.finished)}).Debug("round over")
	g.phase = PhaseRoundOver
	if g.round >= Rounds {
		g.phase = PhaseGameOver
	}
}

// AIToMove reports whether a computer seat is to play.
func (g *Game) AIToMove() bool { return g.phase == PhasePlay && g.turn != HumanSeat }

// PerformAIMove plays or passes for the seat to move.
func (g *Game) PerformAIMove() bool {
	if g.phase != PhasePlay {
		return false
	}
	seat := g.turn
	p, ok := ChoosePlay(g.hands[seat], g.pile, g.difficulty, g.rng)
	if !ok {
		return g.PassSeat(seat) == nil
	}
	return g.PlayCards(seat, p.Cards) == nil
}

func (g *Game) Status() string {
	switch g.phase {
	case PhaseGameOver:
		return fmt.Sprintf("Match over: scores %v", g.scores)
	case PhaseRoundOver:
		return fmt.Sprintf("Round %d over: %s is President", g.round, seatName(g.seatWith(President)))
	}
	if len(g.pile.Cards) == 0 {
		return seatName(g.turn) + " to lead"
	}
	return fmt.Sprintf("%s to beat %v", seatName(g.turn), g.pile.Cards)
}

func seatName(s int) string {
	if s == HumanSeat {
		return "You"
	}
	return fmt.Sprintf("CPU %d", s)
}
