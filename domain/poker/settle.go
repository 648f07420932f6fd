package poker

import "fmt"

// Evaluate compares the two sorted hands under the active evaluator.
// It does not change any state.
func (e *Engine) Evaluate() (Evaluation, error) {
	if err := e.expectPhase("evaluate", PhaseCardsDealt, PhaseSettled); err != nil {
		return Evaluation{}, err
	}
	playerCards, err := e.player.Three()
	if err != nil {
		return Evaluation{}, err
	}
	dealerCards, err := e.dealer.Three()
	if err != nil {
		return Evaluation{}, err
	}
	player, err := e.evaluator.VirtualHand(playerCards)
	if err != nil {
		return Evaluation{}, err
	}
	dealer, err := e.evaluator.VirtualHand(dealerCards)
	if err != nil {
		return Evaluation{}, err
	}

	playerRank := e.evaluator.Rank(player)
	dealerRank := e.evaluator.Rank(dealer)
	qualified := e.evaluator.DealerQualified(dealerRank, dealer.HighCard())

	return Evaluation{
		Player:          player,
		Dealer:          dealer,
		PlayerRank:      playerRank,
		DealerRank:      dealerRank,
		DealerQualified: qualified,
		Outcome:         e.evaluator.Compare(qualified, playerRank, dealerRank, player.Values, dealer.Values),
	}, nil
}

// Settle evaluates the round and pays it:
//   - ante bonus on Straight or better, whatever the outcome;
//   - pair plus on Pair or better: the stake comes back plus the table payout;
//   - push returns ante and play; a win also pays the ante, and the play bet
//     when the dealer qualified; a loss forfeits both.
//
// Payouts are looked up before the balance is touched, so a table missing a
// rank leaves the round unsettled.
func (e *Engine) Settle() (Settlement, error) {
	if err := e.expectPhase("settle", PhaseCardsDealt); err != nil {
		return Settlement{}, err
	}
	ev, err := e.Evaluate()
	if err != nil {
		return Settlement{}, err
	}

	anteBonus := 0
	if ev.PlayerRank >= Straight {
		if anteBonus, err = e.anteBonusTable.Payout(ev.PlayerRank, e.player.AnteBet); err != nil {
			return Settlement{}, err
		}
	}

	hadPairPlus := e.hadPairPlus()
	pairPlusWon := hadPairPlus && ev.PlayerRank >= Pair
	pairPlus := 0
	if pairPlusWon {
		if pairPlus, err = e.pairPlusTable.Payout(ev.PlayerRank, e.player.PairPlusBet); err != nil {
			return Settlement{}, err
		}
	}

	before := e.player.Balance
	e.player.Balance += anteBonus
	if pairPlusWon {
		e.refundPairPlusBet()
		e.player.Balance += pairPlus
	}

	winnings := 0
	switch ev.Outcome {
	case Push:
		e.refundAnteBet()
		e.refundPlayBet()
	case Win:
		e.refundAnteBet()
		e.refundPlayBet()
		winnings = e.player.AnteBet
		if ev.DealerQualified {
			winnings += e.player.PlayBet
		}
	}
	e.player.Balance += winnings

	s := Settlement{
		RoundID:         e.roundID,
		DealerQualified: ev.DealerQualified,
		PlayerRank:      ev.PlayerRank,
		DealerRank:      ev.DealerRank,
		AnteBonusPayout: anteBonus,
		HadPairPlusBet:  hadPairPlus,
		PairPlusPayout:  pairPlus,
		Outcome:         ev.Outcome,
		Winnings:        winnings,
		Wagered:         e.player.AnteBet + e.player.PairPlusBet + e.player.PlayBet,
		Returned:        e.player.Balance - before,
		Balance:         e.player.Balance,
	}
	e.logger.Debug("round settled",
		"round", e.roundID,
		"outcome", s.Outcome,
		"player_rank", s.PlayerRank,
		"dealer_rank", s.DealerRank,
		"net", s.Net(),
		"balance", s.Balance,
	)
	e.setPhase(PhaseSettled)
	return s, nil
}

// Fold gives up the round after the deal: the ante and any pair plus bet are
// forfeited. It is not allowed once the play bet is placed.
func (e *Engine) Fold() (Settlement, error) {
	if err := e.expectPhase("fold", PhaseCardsDealt); err != nil {
		return Settlement{}, err
	}
	if e.player.PlayBet != 0 {
		return Settlement{}, fmt.Errorf("fold after play bet: %w", ErrWrongPhase)
	}
	s := Settlement{
		RoundID:        e.roundID,
		HadPairPlusBet: e.hadPairPlus(),
		Outcome:        Fold,
		Wagered:        e.player.AnteBet + e.player.PairPlusBet,
		Balance:        e.player.Balance,
	}
	e.logger.Debug("round folded", "round", e.roundID, "forfeited", s.Wagered)
	e.setPhase(PhaseSettled)
	return s, nil
}

// hadPairPlus reports whether a side bet of at least the table minimum is on
// the table.
func (e *Engine) hadPairPlus() bool {
	return e.player.PairPlusBet > 0 && e.player.PairPlusBet >= e.limits.MinPairPlusBet
}
