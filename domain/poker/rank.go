package poker

import "fmt"

// HandRank orders three-card hands. Flush ranks below Straight.
type HandRank int

const (
	HighCard HandRank = iota
	Pair
	Flush
	Straight
	ThreeOfAKind
	StraightFlush
	MiniRoyalFlush // suited A-K-Q, California rules only
)

var handRankNames = map[HandRank]string{
	HighCard:       "high_card",
	Pair:           "pair",
	Flush:          "flush",
	Straight:       "straight",
	ThreeOfAKind:   "three_of_a_kind",
	StraightFlush:  "straight_flush",
	MiniRoyalFlush: "mini_royal_flush",
}

// ParseHandRank parses the snake_case name of a rank.
func ParseHandRank(s string) (HandRank, error) {
	for r, name := range handRankNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown hand rank %q", s)
}

func (r HandRank) String() string {
	if name, ok := handRankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("hand_rank(%d)", int(r))
}

// MarshalText lets payout tables be keyed by rank name in JSON.
func (r HandRank) MarshalText() ([]byte, error) {
	if _, ok := handRankNames[r]; !ok {
		return nil, fmt.Errorf("unknown hand rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *HandRank) UnmarshalText(text []byte) error {
	parsed, err := ParseHandRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
