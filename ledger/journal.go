package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luca-patrignani/three-card-poker/domain/poker"
)

const genesisPrevHash = "0"

var (
	ErrNoRound        = errors.New("settlement has no round id")
	ErrDuplicateRound = errors.New("round already recorded")
)

// Journal is the hash-chained log of settled rounds. It is safe for
// concurrent use.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
	rounds  map[uuid.UUID]struct{}
}

// NewJournal creates a journal holding only the genesis entry.
func NewJournal() *Journal {
	j := &Journal{
		entries: make([]Entry, 0),
		rounds:  make(map[uuid.UUID]struct{}),
	}

	genesis := Entry{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
	}
	genesis.Hash = calculateHash(genesis)
	j.entries = append(j.entries, genesis)

	return j
}

// Append records a settled round played under variant.
func (j *Journal) Append(variant poker.Variant, s poker.Settlement) (Entry, error) {
	if s.RoundID == uuid.Nil {
		return Entry{}, ErrNoRound
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.rounds[s.RoundID]; ok {
		return Entry{}, fmt.Errorf("%s: %w", s.RoundID, ErrDuplicateRound)
	}
	latest := j.entries[len(j.entries)-1]

	entry := Entry{
		Index:      latest.Index + 1,
		Timestamp:  time.Now().Unix(),
		PrevHash:   latest.Hash,
		RoundID:    s.RoundID,
		Variant:    variant,
		Settlement: s,
	}
	entry.Hash = calculateHash(entry)

	if err := validateEntry(entry, latest); err != nil {
		return Entry{}, fmt.Errorf("invalid entry: %w", err)
	}

	j.entries = append(j.entries, entry)
	j.rounds[s.RoundID] = struct{}{}
	return entry, nil
}

// Latest returns the most recent entry.
func (j *Journal) Latest() Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.entries[len(j.entries)-1]
}

// ByIndex returns the entry at index; 0 is the genesis entry.
func (j *Journal) ByIndex(index int) (Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.entries) {
		return Entry{}, fmt.Errorf("index %d out of range", index)
	}
	return j.entries[index], nil
}

// Rounds returns the recorded rounds, oldest first, without the genesis entry.
func (j *Journal) Rounds() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Entry, len(j.entries)-1)
	copy(out, j.entries[1:])
	return out
}

// Verify checks the genesis entry and every link of the chain.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.entries) == 0 || j.entries[0].PrevHash != genesisPrevHash {
		return fmt.Errorf("invalid genesis entry")
	}
	if j.entries[0].Hash != calculateHash(j.entries[0]) {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(j.entries); i++ {
		if err := validateEntry(j.entries[i], j.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}
	return nil
}

// Summary totals the recorded rounds.
func (j *Journal) Summary() Summary {
	j.mu.RLock()
	defer j.mu.RUnlock()

	s := Summary{Wagered: decimal.Zero, Returned: decimal.Zero}
	for _, e := range j.entries[1:] {
		s.Rounds++
		switch e.Settlement.Outcome {
		case poker.Win:
			s.Wins++
		case poker.Push:
			s.Pushes++
		case poker.Lose:
			s.Losses++
		case poker.Fold:
			s.Folds++
		}
		s.Wagered = s.Wagered.Add(decimal.NewFromInt(int64(e.Settlement.Wagered)))
		s.Returned = s.Returned.Add(decimal.NewFromInt(int64(e.Settlement.Returned)))
	}
	return s
}

func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	if current.RoundID != current.Settlement.RoundID {
		return fmt.Errorf("round id %s does not match settlement %s", current.RoundID, current.Settlement.RoundID)
	}
	return nil
}

// calculateHash is the SHA256 of the entry fields with the settlement
// serialized as JSON.
func calculateHash(e Entry) string {
	settlement, _ := json.Marshal(e.Settlement)

	data := fmt.Sprintf("%d%d%s%s%s%s",
		e.Index,
		e.Timestamp,
		e.PrevHash,
		e.RoundID,
		e.Variant,
		settlement,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
