package poker

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/three-card-poker/domain/deck"
)

var (
	testAnteBonus = PayoutTable{Straight: 1, ThreeOfAKind: 4, StraightFlush: 5, MiniRoyalFlush: 50}
	testPairPlus  = PayoutTable{Pair: 1, Flush: 4, Straight: 6, ThreeOfAKind: 30, StraightFlush: 40, MiniRoyalFlush: 200}
	testLimits    = Limits{
		MinAnteBet:                  5,
		MaxAnteBet:                  100,
		MinPairPlusBet:              5,
		MaxPairPlusBet:              50,
		GameEndsIfBalanceIsLessThan: 10,
	}
)

func newTestEngine(t *testing.T, balance int) *Engine {
	t.Helper()
	e, err := NewEngine(balance, StandardEvaluator{}, testAnteBonus, testPairPlus, true, testLimits,
		WithShuffler(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	return e
}

// stackedShuffler moves the given raw ids to the top of the deck in order.
type stackedShuffler struct {
	deck *deck.Deck
	top  []int
}

func (s *stackedShuffler) Shuffle(n int, swap func(i, j int)) {
	order := s.deck.Order()
	for i, id := range s.top {
		j := slices.Index(order, id)
		swap(i, j)
		order[i], order[j] = order[j], order[i]
	}
}

func rawID(c Card) int {
	return int(c.suit)*13 + int(c.value) - 1
}

// stack arranges the deck so that dealing alternately to the player and the
// dealer hands out exactly the given cards.
func stack(e *Engine, player, dealer []Card) {
	top := make([]int, 0, 2*HandSize)
	for i := range HandSize {
		top = append(top, rawID(player[i]), rawID(dealer[i]))
	}
	e.shuffler = &stackedShuffler{deck: e.shoe.Deck, top: top}
}

func deal(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.ShuffleDeck())
	for range HandSize {
		_, err := e.DrawCardForPlayer()
		require.NoError(t, err)
		_, err = e.DrawCardForDealer()
		require.NoError(t, err)
	}
	require.Equal(t, PhaseCardsDealt, e.Phase())
	e.SortHands()
}

func TestRawIDMatchesConvertCard(t *testing.T) {
	for raw := 1; raw <= deck.Size; raw++ {
		c, err := ConvertCard(raw)
		require.NoError(t, err)
		require.Equal(t, raw, rawID(c))
	}
}

func TestNewEngineValidation(t *testing.T) {
	_, err := NewEngine(-1, StandardEvaluator{}, testAnteBonus, testPairPlus, true, testLimits)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = NewEngine(100, nil, testAnteBonus, testPairPlus, true, testLimits)
	assert.ErrorIs(t, err, ErrNilEvaluator)

	e, err := NewEngine(100, CaliforniaEvaluator{}, testAnteBonus, testPairPlus, false, testLimits)
	require.NoError(t, err)
	assert.Equal(t, 100, e.Balance())
	assert.Equal(t, PhaseAnteRequired, e.Phase())
	assert.Equal(t, VariantCalifornia, e.Evaluator().Variant())
	assert.Equal(t, uuid.Nil, e.RoundID())
	assert.False(t, e.LimitsEnabled())
}

func TestAnteBetRange(t *testing.T) {
	for amount := -5; amount <= 60; amount++ {
		e := newTestEngine(t, 100)
		upper, err := e.MaxAnteBet()
		require.NoError(t, err)
		require.Equal(t, 50, upper)

		err = e.PlaceAnteBet(amount)
		if amount < e.MinAnteBet() || amount > upper {
			assert.ErrorIs(t, err, ErrBetOutOfRange, "amount %d", amount)
			assert.Equal(t, 100, e.Balance())
			assert.Equal(t, 0, e.AnteBet())
			assert.Equal(t, PhaseAnteRequired, e.Phase())
			continue
		}
		require.NoError(t, err, "amount %d", amount)
		assert.Equal(t, 100-amount, e.Balance())
		assert.Equal(t, amount, e.AnteBet())
		assert.NotEqual(t, uuid.Nil, e.RoundID())
		assert.Equal(t, PhasePairPlusOffered, e.Phase())
	}
}

func TestMaxAnteBet(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		enabled bool
		max     int
		want    int
	}{
		{"half balance", 100, true, 100, 50},
		{"table limit", 100, true, 30, 30},
		{"limits disabled", 1000, false, 30, 500},
		{"odd balance", 41, true, 100, 20},
		{"empty balance", 0, true, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.balance)
			limits := testLimits
			limits.MaxAnteBet = tt.max
			e.ReloadTableLimit(tt.enabled, limits)
			got, err := e.MaxAnteBet()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxAnteBetBounds(t *testing.T) {
	for balance := 0; balance <= 300; balance++ {
		e := newTestEngine(t, balance)
		got, err := e.MaxAnteBet()
		require.NoError(t, err)
		assert.LessOrEqual(t, got, balance/2)
		assert.LessOrEqual(t, got, testLimits.MaxAnteBet)
	}
}

func TestNegativeLimit(t *testing.T) {
	e := newTestEngine(t, 100)
	limits := testLimits
	limits.MaxAnteBet = -1
	limits.MaxPairPlusBet = -1
	e.ReloadTableLimit(true, limits)

	_, err := e.MaxAnteBet()
	assert.ErrorIs(t, err, ErrNegativeLimit)
	_, err = e.MaxPairPlusBet()
	assert.ErrorIs(t, err, ErrNegativeLimit)
	assert.ErrorIs(t, e.PlaceAnteBet(10), ErrNegativeLimit)
	assert.Equal(t, 100, e.Balance())
}

func TestMaxPairPlusBetKeepsPlayBetAffordable(t *testing.T) {
	e := newTestEngine(t, 100)
	e.ReloadTableLimit(false, testLimits)
	require.NoError(t, e.PlaceAnteBet(30))

	upper, err := e.MaxPairPlusBet()
	require.NoError(t, err)
	assert.Equal(t, 40, upper)
	assert.ErrorIs(t, e.PlacePairPlusBet(41), ErrBetOutOfRange)
	require.NoError(t, e.PlacePairPlusBet(40))

	deal(t, e)
	require.NoError(t, e.PlacePlayBet())
	assert.Equal(t, 0, e.Balance())
	assert.Equal(t, 30, e.PlayBet())
}

func TestCanOfferPairPlus(t *testing.T) {
	e := newTestEngine(t, 20)
	require.NoError(t, e.PlaceAnteBet(10))
	ok, err := e.CanOfferPairPlus()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, e.SkipPairPlus())
	assert.Equal(t, PhaseCardsPending, e.Phase())

	e = newTestEngine(t, 100)
	require.NoError(t, e.PlaceAnteBet(10))
	ok, err = e.CanOfferPairPlus()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSettlementExample(t *testing.T) {
	e := newTestEngine(t, 100)
	stack(e,
		[]Card{MustCard(Diamond, 4), MustCard(Heart, 9), MustCard(Spade, King)},
		[]Card{MustCard(Club, Jack), MustCard(Diamond, 8), MustCard(Heart, 3)},
	)

	require.NoError(t, e.PlaceAnteBet(10))
	assert.Equal(t, 90, e.Balance())
	require.NoError(t, e.PlacePairPlusBet(5))
	assert.Equal(t, 85, e.Balance())
	deal(t, e)
	require.NoError(t, e.PlacePlayBet())
	assert.Equal(t, 75, e.Balance())

	ev, err := e.Evaluate()
	require.NoError(t, err)
	assert.False(t, ev.DealerQualified)
	assert.Equal(t, 75, e.Balance(), "evaluate must not pay")

	s, err := e.Settle()
	require.NoError(t, err)
	assert.Equal(t, 105, e.Balance())
	assert.Equal(t, Settlement{
		RoundID:         e.RoundID(),
		DealerQualified: false,
		PlayerRank:      HighCard,
		DealerRank:      HighCard,
		HadPairPlusBet:  true,
		Outcome:         Win,
		Winnings:        10,
		Wagered:         25,
		Returned:        30,
		Balance:         105,
	}, s)
	assert.Equal(t, 5, s.Net())
	assert.Equal(t, PhaseSettled, e.Phase())
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name      string
		evaluator Evaluator
		player    []Card
		dealer    []Card
		pairPlus  int
		outcome   Outcome
		qualified bool
		anteBonus int
		ppPayout  int
		winnings  int
		balance   int
	}{
		{
			name:      "qualified dealer pays the play bet",
			evaluator: StandardEvaluator{},
			player:    []Card{MustCard(Spade, King), MustCard(Heart, King), MustCard(Club, 2)},
			dealer:    []Card{MustCard(Diamond, Queen), MustCard(Club, 9), MustCard(Heart, 4)},
			outcome:   Win,
			qualified: true,
			winnings:  20,
			balance:   120,
		},
		{
			name:      "push refunds ante and play",
			evaluator: StandardEvaluator{},
			player:    []Card{MustCard(Spade, King), MustCard(Heart, 9), MustCard(Diamond, 4)},
			dealer:    []Card{MustCard(Heart, King), MustCard(Club, 9), MustCard(Spade, 4)},
			pairPlus:  5,
			outcome:   Push,
			qualified: true,
			balance:   95,
		},
		{
			name:      "side bets pay on a losing hand",
			evaluator: StandardEvaluator{},
			player:    []Card{MustCard(Spade, 5), MustCard(Heart, 4), MustCard(Club, 3)},
			dealer:    []Card{MustCard(Spade, 9), MustCard(Heart, 9), MustCard(Club, 9)},
			pairPlus:  5,
			outcome:   Lose,
			qualified: true,
			anteBonus: 10,
			ppPayout:  30,
			balance:   120,
		},
		{
			name:      "mini royal under california",
			evaluator: CaliforniaEvaluator{},
			player:    []Card{MustCard(Diamond, Ace), MustCard(Diamond, King), MustCard(Diamond, Queen)},
			dealer:    []Card{MustCard(Spade, 9), MustCard(Heart, 5), MustCard(Club, 2)},
			pairPlus:  5,
			outcome:   Win,
			anteBonus: 500,
			ppPayout:  1000,
			winnings:  10,
			balance:   1610,
		},
		{
			name:      "straight flush under standard",
			evaluator: StandardEvaluator{},
			player:    []Card{MustCard(Diamond, Ace), MustCard(Diamond, King), MustCard(Diamond, Queen)},
			dealer:    []Card{MustCard(Spade, 9), MustCard(Heart, 5), MustCard(Club, 2)},
			pairPlus:  5,
			outcome:   Win,
			anteBonus: 50,
			ppPayout:  200,
			winnings:  10,
			balance:   360,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 100)
			require.NoError(t, e.ReloadGameRules(tt.evaluator, testAnteBonus, testPairPlus))
			stack(e, tt.player, tt.dealer)

			require.NoError(t, e.PlaceAnteBet(10))
			if tt.pairPlus > 0 {
				require.NoError(t, e.PlacePairPlusBet(tt.pairPlus))
			} else {
				require.NoError(t, e.SkipPairPlus())
			}
			deal(t, e)
			require.NoError(t, e.PlacePlayBet())

			s, err := e.Settle()
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, s.Outcome)
			assert.Equal(t, tt.qualified, s.DealerQualified)
			assert.Equal(t, tt.anteBonus, s.AnteBonusPayout)
			assert.Equal(t, tt.pairPlus > 0, s.HadPairPlusBet)
			assert.Equal(t, tt.ppPayout, s.PairPlusPayout)
			assert.Equal(t, tt.winnings, s.Winnings)
			assert.Equal(t, tt.balance, e.Balance())
			assert.Equal(t, tt.balance, s.Balance)
			assert.Equal(t, tt.balance-100, s.Net())
		})
	}
}

func TestSettleMissingPayoutLeavesStateUnchanged(t *testing.T) {
	pairPlus := PayoutTable{Pair: 1, Flush: 4, ThreeOfAKind: 30, StraightFlush: 40}
	e, err := NewEngine(100, StandardEvaluator{}, testAnteBonus, pairPlus, true, testLimits)
	require.NoError(t, err)
	stack(e,
		[]Card{MustCard(Spade, 5), MustCard(Heart, 4), MustCard(Club, 3)},
		[]Card{MustCard(Spade, 9), MustCard(Heart, 9), MustCard(Club, 9)},
	)
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.PlacePairPlusBet(5))
	deal(t, e)
	require.NoError(t, e.PlacePlayBet())

	_, err = e.Settle()
	assert.ErrorIs(t, err, ErrMissingPayout)
	assert.Equal(t, 75, e.Balance())
	assert.Equal(t, PhaseCardsDealt, e.Phase())
	assert.Equal(t, 10, e.AnteBet())
	assert.Equal(t, 5, e.PairPlusBet())
	assert.Equal(t, 10, e.PlayBet())
}

func TestEvaluateUnsortedHand(t *testing.T) {
	e := newTestEngine(t, 100)
	stack(e,
		[]Card{MustCard(Club, 4), MustCard(Heart, King), MustCard(Spade, 9)},
		[]Card{MustCard(Club, Jack), MustCard(Diamond, 8), MustCard(Heart, 3)},
	)
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.SkipPairPlus())
	require.NoError(t, e.ShuffleDeck())
	for range HandSize {
		_, err := e.DrawCardForPlayer()
		require.NoError(t, err)
		_, err = e.DrawCardForDealer()
		require.NoError(t, err)
	}
	_, err := e.Evaluate()
	assert.ErrorIs(t, err, ErrUnsortedHand)

	e.SortHands()
	ev, err := e.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, [HandSize]int{King, 9, 4}, ev.Player.Values)
}

func TestFold(t *testing.T) {
	e := newTestEngine(t, 100)
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.PlacePairPlusBet(5))
	deal(t, e)

	s, err := e.Fold()
	require.NoError(t, err)
	assert.Equal(t, Fold, s.Outcome)
	assert.True(t, s.HadPairPlusBet)
	assert.Equal(t, 15, s.Wagered)
	assert.Equal(t, -15, s.Net())
	assert.Equal(t, 85, e.Balance())
	assert.Equal(t, PhaseSettled, e.Phase())

	e = newTestEngine(t, 100)
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.SkipPairPlus())
	deal(t, e)
	require.NoError(t, e.PlacePlayBet())
	_, err = e.Fold()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestFoldAndSettleAgreeOnPairPlus(t *testing.T) {
	for _, tt := range []struct {
		name  string
		stake int
		want  bool
	}{
		{"no side bet", 0, false},
		{"below the table minimum", 3, false},
		{"at the table minimum", 5, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			folded := newTestEngine(t, 100)
			require.NoError(t, folded.PlaceAnteBet(10))
			require.NoError(t, folded.SkipPairPlus())
			deal(t, folded)
			folded.player.PairPlusBet = tt.stake
			s, err := folded.Fold()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.HadPairPlusBet)

			settled := newTestEngine(t, 100)
			require.NoError(t, settled.PlaceAnteBet(10))
			require.NoError(t, settled.SkipPairPlus())
			deal(t, settled)
			settled.player.PairPlusBet = tt.stake
			require.NoError(t, settled.PlacePlayBet())
			s, err = settled.Settle()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.HadPairPlusBet)
		})
	}
}

func TestPhaseOrder(t *testing.T) {
	e := newTestEngine(t, 100)
	assert.ErrorIs(t, e.PlacePairPlusBet(5), ErrWrongPhase)
	assert.ErrorIs(t, e.SkipPairPlus(), ErrWrongPhase)
	assert.ErrorIs(t, e.ShuffleDeck(), ErrWrongPhase)
	assert.ErrorIs(t, e.PlacePlayBet(), ErrWrongPhase)
	_, err := e.DrawCardForPlayer()
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = e.Settle()
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = e.Evaluate()
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Equal(t, 100, e.Balance())

	require.NoError(t, e.PlaceAnteBet(10))
	assert.ErrorIs(t, e.PlaceAnteBet(10), ErrWrongPhase)
	require.NoError(t, e.ShuffleDeck())
	_, err = e.DrawCardForPlayer()
	require.NoError(t, err)
	assert.Equal(t, PhaseCardsPending, e.Phase())
	assert.ErrorIs(t, e.PlacePairPlusBet(5), ErrWrongPhase)
	assert.ErrorIs(t, e.ShuffleDeck(), ErrWrongPhase)

	_, err = e.DrawCardForPlayer()
	require.NoError(t, err)
	_, err = e.DrawCardForPlayer()
	require.NoError(t, err)
	_, err = e.DrawCardForPlayer()
	assert.ErrorIs(t, err, ErrHandFull)
	for range HandSize {
		_, err = e.DrawCardForDealer()
		require.NoError(t, err)
	}
	assert.Equal(t, PhaseCardsDealt, e.Phase())
	_, err = e.DrawCardForDealer()
	assert.ErrorIs(t, err, ErrWrongPhase)

	e.SortHands()
	require.NoError(t, e.PlacePlayBet())
	assert.ErrorIs(t, e.PlacePlayBet(), ErrWrongPhase)
	_, err = e.Settle()
	require.NoError(t, err)
	_, err = e.Settle()
	assert.ErrorIs(t, err, ErrWrongPhase)
	_, err = e.Evaluate()
	assert.NoError(t, err)
}

type engineState struct {
	Balance       int
	AnteBet       int
	PairPlusBet   int
	PlayBet       int
	PlayerHand    []Card
	DealerHand    []Card
	Phase         Phase
	RoundID       uuid.UUID
	Variant       Variant
	Limits        Limits
	LimitsEnabled bool
}

func snapshot(e *Engine) engineState {
	return engineState{
		Balance:       e.Balance(),
		AnteBet:       e.AnteBet(),
		PairPlusBet:   e.PairPlusBet(),
		PlayBet:       e.PlayBet(),
		PlayerHand:    e.PlayerHand(),
		DealerHand:    e.DealerHand(),
		Phase:         e.Phase(),
		RoundID:       e.RoundID(),
		Variant:       e.Evaluator().Variant(),
		Limits:        e.Limits(),
		LimitsEnabled: e.LimitsEnabled(),
	}
}

func playRound(t *testing.T, e *Engine) Settlement {
	t.Helper()
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.PlacePairPlusBet(5))
	deal(t, e)
	require.NoError(t, e.PlacePlayBet())
	s, err := e.Settle()
	require.NoError(t, err)
	return s
}

func TestResetGameStateIsIdempotent(t *testing.T) {
	e := newTestEngine(t, 100)
	playRound(t, e)
	balance := e.Balance()

	e.ResetGameState()
	first := snapshot(e)
	e.ResetGameState()
	assert.Equal(t, first, snapshot(e))

	assert.Equal(t, balance, first.Balance)
	assert.Equal(t, PhaseAnteRequired, first.Phase)
	assert.Equal(t, uuid.Nil, first.RoundID)
	assert.Empty(t, first.PlayerHand)
	assert.Empty(t, first.DealerHand)
	assert.Zero(t, first.AnteBet+first.PairPlusBet+first.PlayBet)
}

func TestReloadGameRulesMatchesFreshEngine(t *testing.T) {
	e := newTestEngine(t, 100)
	playRound(t, e)

	assert.ErrorIs(t, e.ReloadGameRules(nil, testAnteBonus, testPairPlus), ErrNilEvaluator)
	assert.Equal(t, PhaseSettled, e.Phase())

	require.NoError(t, e.ReloadGameRules(CaliforniaEvaluator{}, testAnteBonus, testPairPlus))
	e.ResetGameState()

	fresh, err := NewEngine(e.Balance(), CaliforniaEvaluator{}, testAnteBonus, testPairPlus, true, testLimits)
	require.NoError(t, err)
	assert.Equal(t, snapshot(fresh), snapshot(e))
}

func TestReloadTableLimitResetsRound(t *testing.T) {
	e := newTestEngine(t, 100)
	require.NoError(t, e.PlaceAnteBet(10))
	require.NoError(t, e.PlacePairPlusBet(5))
	deal(t, e)
	require.NoError(t, e.PlacePlayBet())
	require.Equal(t, 75, e.Balance())

	limits := testLimits
	limits.MaxAnteBet = 20
	e.ReloadTableLimit(false, limits)

	state := snapshot(e)
	assert.Zero(t, state.AnteBet)
	assert.Zero(t, state.PairPlusBet)
	assert.Zero(t, state.PlayBet)
	assert.Empty(t, state.PlayerHand)
	assert.Empty(t, state.DealerHand)
	assert.Equal(t, PhaseAnteRequired, state.Phase)
	assert.Equal(t, uuid.Nil, state.RoundID)
	// stakes on the table are not refunded
	assert.Equal(t, 75, state.Balance)
	assert.False(t, state.LimitsEnabled)
	assert.Equal(t, limits, state.Limits)

	require.NoError(t, e.PlaceAnteBet(30))
}

func TestShuffleDeckResetsCursor(t *testing.T) {
	e := newTestEngine(t, 100_000)
	for round := range 30 {
		require.NoError(t, e.PlaceAnteBet(10), "round %d", round)
		require.NoError(t, e.SkipPairPlus())
		deal(t, e)
		assert.Equal(t, deck.Size-2*HandSize, e.shoe.Remaining())
		_, err := e.Fold()
		require.NoError(t, err)
		e.ResetGameState()
	}
}

func TestBalanceIsConserved(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	e := newTestEngine(t, 1000)
	initial := e.Balance()
	net := 0

	for round := 0; round < 500 && e.HasSufficientBalance(); round++ {
		upper, err := e.MaxAnteBet()
		require.NoError(t, err)
		if upper < e.MinAnteBet() {
			break
		}
		require.NoError(t, e.PlaceAnteBet(e.MinAnteBet()+r.IntN(upper-e.MinAnteBet()+1)))

		ok, err := e.CanOfferPairPlus()
		require.NoError(t, err)
		if ok && r.IntN(2) == 0 {
			ppUpper, err := e.MaxPairPlusBet()
			require.NoError(t, err)
			require.NoError(t, e.PlacePairPlusBet(e.MinPairPlusBet()+r.IntN(ppUpper-e.MinPairPlusBet()+1)))
		} else {
			require.NoError(t, e.SkipPairPlus())
		}
		deal(t, e)

		var s Settlement
		if r.IntN(4) == 0 {
			s, err = e.Fold()
		} else {
			require.NoError(t, e.PlacePlayBet())
			s, err = e.Settle()
		}
		require.NoError(t, err)
		net += s.Net()
		require.GreaterOrEqual(t, e.Balance(), 0)
		require.Equal(t, initial+net, e.Balance(), "round %d", round)
		e.ResetGameState()
	}
}

func TestAddDeductBalance(t *testing.T) {
	e := newTestEngine(t, 10)
	assert.ErrorIs(t, e.AddBalance(-1), ErrNegativeAmount)
	require.NoError(t, e.AddBalance(5))
	assert.Equal(t, 15, e.Balance())

	assert.ErrorIs(t, e.DeductBalance(-1), ErrNegativeAmount)
	assert.ErrorIs(t, e.DeductBalance(16), ErrInsufficientBalance)
	require.NoError(t, e.DeductBalance(6))
	assert.Equal(t, 9, e.Balance())
	assert.False(t, e.HasSufficientBalance())
}

func TestEngineLogsSettlement(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, err := NewEngine(100, StandardEvaluator{}, testAnteBonus, testPairPlus, true, testLimits, WithLogger(logger))
	require.NoError(t, err)

	s := playRound(t, e)
	assert.Contains(t, buf.String(), "round settled")
	assert.Contains(t, buf.String(), s.RoundID.String())
}
