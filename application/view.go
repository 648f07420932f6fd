package application

import (
	"github.com/luca-patrignani/three-card-poker/domain/poker"
	"github.com/luca-patrignani/three-card-poker/ledger"
)

// Event identifies what a Message tells the player.
type Event string

const (
	EventWelcome             Event = "welcome"
	EventBalance             Event = "balance"
	EventAntePlaced          Event = "ante_placed"
	EventPairPlusPlaced      Event = "pair_plus_placed"
	EventNoPairPlus          Event = "no_pair_plus"
	EventPairPlusUnavailable Event = "pair_plus_unavailable"
	EventInvalidInteger      Event = "invalid_integer"
	EventBetOutOfRange       Event = "bet_out_of_range"
	EventTooManyAnteTries    Event = "too_many_ante_tries"
	EventTooManyPairPlus     Event = "too_many_pair_plus_tries"
	EventPlayerCard          Event = "player_card"
	EventDealerCard          Event = "dealer_card"
	EventHandDealt           Event = "hand_dealt"
	EventPlayerHand          Event = "player_hand"
	EventDealerHand          Event = "dealer_hand"
	EventPlayBetPlaced       Event = "play_bet_placed"
	EventAnteBonus           Event = "ante_bonus"
	EventPairPlusWon         Event = "pair_plus_won"
	EventPairPlusLost        Event = "pair_plus_lost"
	EventDealerNotQualified  Event = "dealer_not_qualified"
	EventWin                 Event = "win"
	EventPush                Event = "push"
	EventLose                Event = "lose"
	EventFold                Event = "fold"
	EventInsufficientBalance Event = "insufficient_balance"
	EventRulesChanged        Event = "rules_changed"
	EventLimitsChanged       Event = "limits_changed"
	EventSessionSummary      Event = "session_summary"
	EventExit                Event = "exit"
)

// Message is a notification for the player. Only the fields relevant to the
// event are set.
type Message struct {
	Event   Event
	Amount  int
	Min     int
	Max     int
	Card    poker.Card
	Hand    []poker.Card
	Rank    poker.HandRank
	Variant poker.Variant
	Enabled bool
	Limits  poker.Limits
	Summary ledger.Summary
}

// Prompt identifies a question asked to the player.
type Prompt string

const (
	PromptMainMenu   Prompt = "main_menu"
	PromptAnte       Prompt = "ante"
	PromptPairPlus   Prompt = "pair_plus"
	PromptPairOffer  Prompt = "pair_plus_offer"
	PromptDrawCard   Prompt = "draw_card"
	PromptPlayOrFold Prompt = "play_or_fold"
	PromptVariant    Prompt = "variant"
)

// View is the player-facing side of the controller. Implementations return
// io.EOF when the player closes the input.
type View interface {
	// Show renders a notification.
	Show(m Message)
	// Select asks the player to pick one of options.
	Select(p Prompt, options []string) (string, error)
	// Input asks for a bet amount in [lower, upper]; the raw text is returned
	// unvalidated.
	Input(p Prompt, lower, upper int) (string, error)
	// Pause waits for the player to continue.
	Pause(p Prompt) error
	// Text prints a line of free text.
	Text(line string)
}
