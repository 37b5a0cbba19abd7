package holdem

// Rules are the fixed table settings.
type Rules struct {
	Seats      int
	StartChips int
	SmallBlind int
	BigBlind   int
}

// DefaultRules is a four-handed table with 1000 chips and 10/20 blinds.
func DefaultRules() Rules {
	return Rules{Seats: 4, StartChips: 1000, SmallBlind: 10, BigBlind: 20}
}
