package rummy

// Rules are the fixed gin rummy constants.
type Rules struct {
	HandSize      int
	KnockLimit    int // highest deadwood allowed when knocking
	GinBonus      int
	UndercutBonus int
	Target        int // game ends when a player reaches this score
	MinStock      int // round is void when the stock falls to this many cards
}

// DefaultRules returns standard two-player gin rummy.
func DefaultRules() Rules {
	return Rules{
		HandSize:      10,
		KnockLimit:    10,
		GinBonus:      25,
		UndercutBonus: 25,
		Target:        100,
		MinStock:      2,
	}
}
