package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

var title = cases.Title(language.English)

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Three ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Card ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Poker", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// rankName turns "three_of_a_kind" into "Three Of A Kind".
func rankName(r poker.HandRank) string {
	return title.String(strings.ReplaceAll(r.String(), "_", " "))
}

func variantName(v poker.Variant) string {
	return title.String(string(v))
}

func handString(cards []poker.Card) string {
	return strings.Join(lo.Map(cards, func(c poker.Card, _ int) string {
		return c.Styled()
	}), " - ")
}

func handPanel(name string, cards []poker.Card, rank poker.HandRank) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprint(" " + handString(cards) + " ")
	return pbox.WithTitle(name).WithTitleTopLeft().Sprintf("%s\n%s", hand, rankName(rank))
}

func limitsPanel(enabled bool, l poker.Limits) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	state := pterm.LightRed("Disabled")
	if enabled {
		state = pterm.LightGreen("Enabled")
	}
	return pbox.WithTitle(pterm.LightYellow("|TABLE LIMITS|")).WithTitleTopCenter().Sprintf(
		"%s\nAnte: %d - %d\nPair Plus: %d - %d\nGame ends below: %d",
		state, l.MinAnteBet, l.MaxAnteBet, l.MinPairPlusBet, l.MaxPairPlusBet, l.GameEndsIfBalanceIsLessThan,
	)
}

func summaryPanel(s ledger.Summary, balance int) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	net := s.Net()
	netString := pterm.LightGreen("+" + net.String())
	if net.IsNegative() {
		netString = pterm.LightRed(net.String())
	}
	return pbox.WithTitle(pterm.LightGreen("|SESSION|")).WithTitleTopCenter().Sprintf(
		"Rounds: %d (won %d, push %d, lost %d, folded %d)\nWagered: %s\nReturned: %s\nNet: %s\nReturn to player: %s%%\nBalance: %d",
		s.Rounds, s.Wins, s.Pushes, s.Losses, s.Folds,
		s.Wagered.String(), s.Returned.String(), netString,
		s.ReturnToPlayer().Shift(2).StringFixed(2), balance,
	)
}

func renderShowdown(player, dealer pterm.Panel) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{player, dealer},
	}).Render()
}
