package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-card-poker/application"
)

var promptText = map[application.Prompt]string{
	application.PromptMainMenu:   "What do you want to do?",
	application.PromptAnte:       "Place your Ante bet",
	application.PromptPairPlus:   "Place your Pair Plus bet",
	application.PromptPairOffer:  "Do you want to bet on Pair Plus?",
	application.PromptDrawCard:   "Press enter to draw a card",
	application.PromptPlayOrFold: "Play or fold?",
	application.PromptVariant:    "Choose the game rules",
}

// terminalView renders the session with pterm.
type terminalView struct {
	playerPanel pterm.Panel
}

func (v *terminalView) Show(m application.Message) {
	switch m.Event {
	case application.EventWelcome:
		pterm.Info.Printfln("Welcome to the table. Playing %s rules.", variantName(m.Variant))
	case application.EventBalance:
		pterm.Info.Printfln("Your balance: %d", m.Amount)
	case application.EventAntePlaced:
		pterm.Success.Printfln("Ante bet of %d placed", m.Amount)
	case application.EventPairPlusPlaced:
		pterm.Success.Printfln("Pair Plus bet of %d placed", m.Amount)
	case application.EventNoPairPlus:
		pterm.Info.Println("No Pair Plus this round")
	case application.EventPairPlusUnavailable:
		pterm.Warning.Printfln("Pair Plus skipped: your balance does not cover the minimum bet of %d", m.Min)
	case application.EventInvalidInteger:
		pterm.Error.Println("Please type a whole number")
	case application.EventBetOutOfRange:
		pterm.Error.Printfln("The bet must be between %d and %d", m.Min, m.Max)
	case application.EventTooManyAnteTries:
		pterm.Warning.Println("Too many invalid bets, back to the menu")
	case application.EventTooManyPairPlus:
		pterm.Warning.Println("Too many invalid bets, Pair Plus skipped")
	case application.EventPlayerCard:
		pterm.Info.Printfln("You drew %s", m.Card.Styled())
	case application.EventDealerCard:
		pterm.Info.Println("The dealer drew a card")
	case application.EventHandDealt:
		pterm.Info.Printfln("Your hand: %s", handString(m.Hand))
	case application.EventPlayerHand:
		v.playerPanel = pterm.Panel{Data: handPanel("You", m.Hand, m.Rank)}
	case application.EventDealerHand:
		renderShowdown(v.playerPanel, pterm.Panel{Data: handPanel("Dealer", m.Hand, m.Rank)})
	case application.EventPlayBetPlaced:
		pterm.Success.Printfln("Play bet of %d placed", m.Amount)
	case application.EventAnteBonus:
		pterm.Success.Printfln("Ante Bonus! %s pays %d", rankName(m.Rank), m.Amount)
	case application.EventPairPlusWon:
		pterm.Success.Printfln("Pair Plus wins! %s pays %d", rankName(m.Rank), m.Amount)
	case application.EventPairPlusLost:
		pterm.Warning.Println("No pair or better, the Pair Plus bet is lost")
	case application.EventDealerNotQualified:
		pterm.Info.Println("The dealer does not qualify")
	case application.EventWin:
		pterm.Success.Printfln("You win %d", m.Amount)
	case application.EventPush:
		pterm.Info.Println("Push, your bets are returned")
	case application.EventLose:
		pterm.Error.Println("The dealer wins")
	case application.EventFold:
		pterm.Warning.Printfln("You folded and lost %d", m.Amount)
	case application.EventInsufficientBalance:
		pterm.Error.Printfln("Your balance is below %d, the game is over", m.Amount)
	case application.EventRulesChanged:
		pterm.Success.Printfln("Now playing %s rules", variantName(m.Variant))
	case application.EventLimitsChanged:
		pterm.Println(limitsPanel(m.Enabled, m.Limits))
	case application.EventSessionSummary:
		pterm.Println(summaryPanel(m.Summary, m.Amount))
	case application.EventExit:
		pterm.Info.Println("Thanks for playing!")
	default:
		pterm.Debug.Printfln("unhandled event %s", m.Event)
	}
}

func (v *terminalView) Select(p application.Prompt, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(promptText[p]).WithOptions(options).Show()
}

func (v *terminalView) Input(p application.Prompt, lower, upper int) (string, error) {
	text := fmt.Sprintf("%s (%d - %d)", promptText[p], lower, upper)
	return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
}

func (v *terminalView) Pause(p application.Prompt) error {
	_, err := pterm.DefaultInteractiveTextInput.WithDefaultText(promptText[p]).Show()
	return err
}

func (v *terminalView) Text(line string) {
	pterm.Println(line)
}
