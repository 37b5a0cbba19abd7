package holdem

import (
	"fmt"
	"slices"

	"github.com/casualarcade/arcade/engine"
	"github.com/sirupsen/logrus"
)

const title = "holdem"

// HumanSeat is where the human sits; every other seat is computer controlled.
const HumanSeat = 0

// Street is the betting phase of a hand.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	HandOver
	GameOver
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "hand_over", "game_over"}[s]
}

// Player is one seat's state.
type Player struct {
	Name      string
	Chips     int
	Hole      []Card
	Bet       int // chips put in on the current street
	Committed int // chips put in this hand
	Folded    bool
	AllIn     bool
	Out       bool // busted in an earlier hand
	acted     bool
}

func (p *Player) inHand() bool { return !p.Out && !p.Folded }
func (p *Player) canAct() bool { return p.inHand() && !p.AllIn }

// Pot is one main or side pot and the seats that can win it.
type Pot struct {
	Amount   int
	Eligible []int
	Winners  []int
}

// HandResult describes how the last hand was settled.
type HandResult struct {
	Pots        []Pot
	Hands       map[int]HandValue // shown hands at showdown
	Uncontested bool              // everyone else folded
}

// Table runs hands of hold'em until the human or every computer busts.
type Table struct {
	rules      Rules
	players    []Player
	deck       *engine.Deck
	board      []Card
	burned     []Card
	button     int
	street     Street
	toAct      int
	currentBet int
	lastRaise  int
	handNo     int
	result     *HandResult
	difficulty engine.Difficulty
	seed       uint64
	rng        *engine.Rand
}

// New seats the players and deals the first hand.
func New(seed uint64, d engine.Difficulty) *Table {
	t := &Table{rules: DefaultRules(), seed: seed, difficulty: d}
	t.Reset()
	return t
}

// Reset restores starting stacks and deals a fresh first hand.
func (t *Table) Reset() {
	t.rng = engine.NewRand(t.seed)
	t.players = make([]Player, t.rules.Seats)
	for i := range t.players {
		t.players[i] = Player{Name: fmt.Sprintf("CPU %d", i), Chips: t.rules.StartChips}
	}
	t.players[HumanSeat].Name = "You"
	t.button = t.rules.Seats - 1
	t.handNo = 0
	t.startHand()
}

// SetDifficulty changes the computer players and resets the table.
func (t *Table) SetDifficulty(d engine.Difficulty) {
	t.difficulty = d
	t.Reset()
}

// next returns the first seat after from (exclusive) that satisfies ok, or -1.
func (t *Table) next(from int, ok func(*Player) bool) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		s := (from + i) % n
		if ok(&t.players[s]) {
			return s
		}
	}
	return -1
}

func seated(p *Player) bool { return !p.Out }

func (t *Table) startHand() {
	t.handNo++
	t.deck = engine.NewShuffledDeck(t.rng)
	t.board = t.board[:0]
	t.burned = t.burned[:0]
	t.result = nil
	for i := range t.players {
		p := &t.players[i]
		p.Hole, p.Bet, p.Committed = nil, 0, 0
		p.Folded, p.AllIn, p.acted = false, false, false
	}
	t.button = t.next(t.button, seated)

	sb := t.next(t.button, seated)
	if t.countSeated() == 2 {
		sb = t.button
	}
	bb := t.next(sb, seated)
	t.post(sb, t.rules.SmallBlind)
	t.post(bb, t.rules.BigBlind)
	t.currentBet = t.rules.BigBlind
	t.lastRaise = t.rules.BigBlind

	for round := 0; round < 2; round++ {
		for s := t.next(t.button, seated); ; s = t.next(s, seated) {
			c, _ := t.deck.Draw()
			t.players[s].Hole = append(t.players[s].Hole, c)
			if s == t.button {
				break
			}
		}
	}
	t.street = Preflop
	t.toAct = bb
	t.advanceTurn()
}

func (t *Table) countSeated() int {
	n := 0
	for i := range t.players {
		if !t.players[i].Out {
			n++
		}
	}
	return n
}

func (t *Table) post(seat, amount int) {
	p := &t.players[seat]
	if amount >= p.Chips {
		amount = p.Chips
		p.AllIn = true
	}
	p.Chips -= amount
	p.Bet += amount
	p.Committed += amount
}

// NewHand deals the next hand once the current one is settled.
func (t *Table) NewHand() error {
	switch t.street {
	case GameOver:
		return engine.Reject(title, "new_hand", engine.ErrGameOver)
	case HandOver:
		t.startHand()
		return nil
	}
	return engine.Reject(title, "new_hand", engine.ErrWrongPhase)
}

func (t *Table) Title() string                 { return title }
func (t *Table) Rules() Rules                  { return t.rules }
func (t *Table) Difficulty() engine.Difficulty { return t.difficulty }
func (t *Table) Street() Street                { return t.street }
func (t *Table) Button() int                   { return t.button }
func (t *Table) HandNumber() int               { return t.handNo }
func (t *Table) CurrentBet() int               { return t.currentBet }
func (t *Table) IsOver() bool                  { return t.street == GameOver }
func (t *Table) LastResult() *HandResult       { return t.result }

// ToAct is the seat whose decision is pending, or -1 between hands.
func (t *Table) ToAct() int {
	if t.street >= HandOver {
		return -1
	}
	return t.toAct
}

// Board returns the community cards.
func (t *Table) Board() []Card { return slices.Clone(t.board) }

// Player returns a copy of seat s.
func (t *Table) Player(s int) Player {
	p := t.players[s]
	p.Hole = slices.Clone(p.Hole)
	return p
}

// Pot is every chip committed this hand.
func (t *Table) Pot() int {
	total := 0
	for i := range t.players {
		total += t.players[i].Committed
	}
	return total
}

// TotalChips counts stacks plus chips in the pot; it never changes.
func (t *Table) TotalChips() int {
	total := t.Pot()
	for i := range t.players {
		total += t.players[i].Chips
	}
	return total
}

// CardCount totals deck, board, burned cards and every dealt hole card.
func (t *Table) CardCount() int {
	n := t.deck.Len() + len(t.board) + len(t.burned)
	for i := range t.players {
		n += len(t.players[i].Hole)
	}
	return n
}

// MinRaiseTo is the smallest legal raise-to amount.
func (t *Table) MinRaiseTo() int { return t.currentBet + t.lastRaise }

// Outcome is the match result from the human's side.
func (t *Table) Outcome() engine.Outcome {
	if t.street != GameOver {
		return engine.InProgress
	}
	if t.players[HumanSeat].Out {
		return engine.WinSideTwo
	}
	return engine.WinSideOne
}

// ActionKind enumerates betting decisions.
type ActionKind uint8

const (
	ActFold ActionKind = iota
	ActCheck
	ActCall
	ActRaise
	ActAllIn
)

func (a ActionKind) String() string {
	return [...]string{"fold", "check", "call", "raise", "all_in"}[a]
}

// Decision is an action with its raise-to total when raising.
type Decision struct {
	Action ActionKind
	Amount int
}

// Fold, Check, Call, Raise and AllIn act for the human seat.
func (t *Table) Fold() error        { return t.Act(HumanSeat, Decision{Action: ActFold}) }
func (t *Table) Check() error       { return t.Act(HumanSeat, Decision{Action: ActCheck}) }
func (t *Table) Call() error        { return t.Act(HumanSeat, Decision{Action: ActCall}) }
func (t *Table) Raise(to int) error { return t.Act(HumanSeat, Decision{Action: ActRaise, Amount: to}) }
func (t *Table) AllIn() error       { return t.Act(HumanSeat, Decision{Action: ActAllIn}) }

// Act applies d for seat. Raise amounts are raise-to totals for the street;
// a short all-in below the minimum raise is allowed.
func (t *Table) Act(seat int, d Decision) error {
	action := d.Action.String()
	if t.street >= HandOver {
		return engine.Reject(title, action, engine.ErrGameOver)
	}
	if seat != t.toAct {
		return engine.Reject(title, action, engine.ErrNotYourTurn)
	}
	p := &t.players[seat]
	toCall := t.currentBet - p.Bet
	switch d.Action {
	case ActFold:
		p.Folded = true
	case ActCheck:
		if toCall > 0 {
			return engine.Reject(title, action, fmt.Errorf("%w: %d to call", engine.ErrIllegalMove, toCall))
		}
	case ActCall:
		if toCall <= 0 {
			return engine.Reject(title, action, fmt.Errorf("%w: nothing to call", engine.ErrIllegalMove))
		}
		t.post(seat, toCall)
	case ActRaise:
		maxTo := p.Bet + p.Chips
		switch {
		case !t.CanRaise(seat):
			return engine.Reject(title, action, fmt.Errorf("%w: action not reopened", engine.ErrIllegalMove))
		case d.Amount <= t.currentBet || d.Amount > maxTo:
			return engine.Reject(title, action, fmt.Errorf("%w: raise to %d", engine.ErrInvalidArgument, d.Amount))
		case d.Amount < t.MinRaiseTo() && d.Amount < maxTo:
			return engine.Reject(title, action, fmt.Errorf("%w: raise to %d below minimum %d", engine.ErrIllegalMove, d.Amount, t.MinRaiseTo()))
		}
		t.raiseTo(seat, d.Amount)
	case ActAllIn:
		if p.Chips == 0 {
			return engine.Reject(title, action, engine.ErrIllegalMove)
		}
		to := p.Bet + p.Chips
		if to > t.currentBet {
			if !t.CanRaise(seat) {
				return engine.Reject(title, action, fmt.Errorf("%w: action not reopened", engine.ErrIllegalMove))
			}
			t.raiseTo(seat, to)
		} else {
			t.post(seat, p.Chips)
		}
	default:
		return engine.Reject(title, action, engine.ErrInvalidArgument)
	}
	p.acted = true
	t.advanceTurn()
	return nil
}

// raiseTo puts seat's street total at to. Only a full raise reopens the
// action; a short all-in leaves seats that already acted able to call or fold.
func (t *Table) raiseTo(seat, to int) {
	p := &t.players[seat]
	t.post(seat, to-p.Bet)
	inc := to - t.currentBet
	t.currentBet = to
	if inc < t.lastRaise {
		return
	}
	t.lastRaise = inc
	for i := range t.players {
		if i != seat {
			t.players[i].acted = false
		}
	}
}

// CanRaise reports whether seat may still raise this street: it has not
// acted since the last full raise.
func (t *Table) CanRaise(seat int) bool { return !t.players[seat].acted }

func (t *Table) countIn() (inHand, canAct int) {
	for i := range t.players {
		p := &t.players[i]
		if p.inHand() {
			inHand++
			if !p.AllIn {
				canAct++
			}
		}
	}
	return inHand, canAct
}

func (t *Table) streetClosed() bool {
	for i := range t.players {
		p := &t.players[i]
		if p.canAct() && (!p.acted || p.Bet < t.currentBet) {
			return false
		}
	}
	return true
}

// advanceTurn moves to the next seat that owes a decision, closing streets
// and dealing community cards as needed. With fewer than two players able to
// bet the board is run out and the hand goes to showdown.
func (t *Table) advanceTurn() {
	for {
		inHand, canAct := t.countIn()
		if inHand == 1 {
			t.awardUncontested()
			return
		}
		if !t.streetClosed() && !(canAct == 1 && t.loneBettorMatched()) {
			t.toAct = t.next(t.toAct, func(p *Player) bool {
				return p.canAct() && (!p.acted || p.Bet < t.currentBet)
			})
			return
		}
		if t.street == River {
			t.showdown()
			return
		}
		t.nextStreet()
		if _, canAct := t.countIn(); canAct >= 2 {
			t.toAct = t.next(t.button, (*Player).canAct)
			return
		}
	}
}

// loneBettorMatched reports whether the only player still able to bet has
// already matched the current bet, leaving nobody to respond to.
func (t *Table) loneBettorMatched() bool {
	for i := range t.players {
		if p := &t.players[i]; p.canAct() {
			return p.Bet >= t.currentBet
		}
	}
	return true
}

func (t *Table) nextStreet() {
	for i := range t.players {
		t.players[i].Bet = 0
		t.players[i].acted = false
	}
	t.currentBet = 0
	t.lastRaise = t.rules.BigBlind
	n := 1
	if t.street == Preflop {
		n = 3
	}
	c, _ := t.deck.Draw()
	t.burned = append(t.burned, c)
	for i := 0; i < n; i++ {
		c, _ := t.deck.Draw()
		t.board = append(t.board, c)
	}
	t.street++
}

func (t *Table) awardUncontested() {
	winner := t.next(-1, (*Player).inHand)
	pot := t.Pot()
	t.players[winner].Chips += pot
	t.result = &HandResult{
		Pots:        []Pot{{Amount: pot, Eligible: []int{winner}, Winners: []int{winner}}},
		Uncontested: true,
	}
	t.finishHand()
}

// buildPots splits commitments into a main pot and side pots at each all-in level.
func (t *Table) buildPots() []Pot {
	var levels []int
	for i := range t.players {
		p := &t.players[i]
		if p.inHand() && !slices.Contains(levels, p.Committed) {
			levels = append(levels, p.Committed)
		}
	}
	slices.Sort(levels)
	var pots []Pot
	prev := 0
	for _, level := range levels {
		pot := Pot{}
		for i := range t.players {
			p := &t.players[i]
			pot.Amount += min(p.Committed, level) - min(p.Committed, prev)
			if p.inHand() && p.Committed >= level {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = level
	}
	// Chips folded above the highest live commitment join the last pot.
	extra := 0
	for i := range t.players {
		if c := t.players[i].Committed; c > prev {
			extra += c - prev
		}
	}
	if extra > 0 && len(pots) > 0 {
		pots[len(pots)-1].Amount += extra
	}
	return pots
}

func (t *Table) showdown() {
	hands := map[int]HandValue{}
	for i := range t.players {
		p := &t.players[i]
		if !p.inHand() {
			continue
		}
		v, _, _ := EvaluateBestHand(append(slices.Clone(p.Hole), t.board...))
		hands[i] = v
	}
	pots := t.buildPots()
	for k := range pots {
		pot := &pots[k]
		for _, s := range pot.Eligible {
			switch {
			case len(pot.Winners) == 0:
				pot.Winners = []int{s}
			default:
				switch Compare(hands[s], hands[pot.Winners[0]]) {
				case 1:
					pot.Winners = []int{s}
				case 0:
					pot.Winners = append(pot.Winners, s)
				}
			}
		}
		t.split(pot)
	}
	t.result = &HandResult{Pots: pots, Hands: hands}
	t.finishHand()
}

// split shares a pot evenly; odd chips go one at a time to winners in seat
// order starting left of the button.
func (t *Table) split(pot *Pot) {
	share := pot.Amount / len(pot.Winners)
	odd := pot.Amount % len(pot.Winners)
	for _, s := range pot.Winners {
		t.players[s].Chips += share
	}
	for s := t.next(t.button, seated); odd > 0; s = t.next(s, seated) {
		if slices.Contains(pot.Winners, s) {
			t.players[s].Chips++
			odd--
		}
	}
}

func (t *Table) finishHand() {
	for i := range t.players {
		p := &t.players[i]
		p.Committed, p.Bet = 0, 0
		if !p.Out && p.Chips == 0 {
			p.Out = true
		}
	}
	aiLeft := 0
	for i := range t.players {
		if i != HumanSeat && !t.players[i].Out {
			aiLeft++
		}
	}
	t.street = HandOver
	if t.players[HumanSeat].Out || aiLeft == 0 {
		t.street = GameOver
	}
	engine.Log().WithFields(logrus.Fields{
		"game": title, "hand": t.handNo, "board": fmt.Sprint(t.board), "uncontested": t.result.Uncontested,
	}).Debug("hand settled")
}

// AIToMove reports whether a computer seat owes a decision.
func (t *Table) AIToMove() bool { return t.street < HandOver && t.toAct != HumanSeat }

// PerformAIMove lets the seat to act decide by the table's difficulty.
func (t *Table) PerformAIMove() bool {
	if t.street >= HandOver {
		return false
	}
	seat := t.toAct
	d := Decide(t.View(seat), t.difficulty, t.rng)
	if err := t.Act(seat, d); err != nil {
		// Fall back to the passive legal choice.
		if t.currentBet > t.players[seat].Bet {
			return t.Act(seat, Decision{Action: ActFold}) == nil
		}
		return t.Act(seat, Decision{Action: ActCheck}) == nil
	}
	return true
}

func (t *Table) Status() string {
	switch t.street {
	case GameOver:
		if t.players[HumanSeat].Out {
			return "You are out of chips"
		}
		return "You won the table"
	case HandOver:
		if t.result != nil && len(t.result.Pots) > 0 {
			w := t.result.Pots[0].Winners
			if len(w) == 1 {
				return fmt.Sprintf("%s won %d", t.players[w[0]].Name, t.result.Pots[0].Amount)
			}
			return fmt.Sprintf("Split pot of %d", t.result.Pots[0].Amount)
		}
		return "Hand over"
	}
	return fmt.Sprintf("%s: %s to act, pot %d", t.street, t.players[t.toAct].Name, t.Pot())
}
