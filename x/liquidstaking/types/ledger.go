package types

import (
	"cosmossdk.io/math"
)

// UnlockChunk is an amount that becomes withdrawable once Era is reached.
type UnlockChunk struct {
	Value math.Int `json:"value"`
	Era   uint32   `json:"era"`
}

// UnlockChunks is an era-ordered schedule of unlocking amounts.
type UnlockChunks []UnlockChunk

// Add merges value into the last chunk when it matures in the same era,
// otherwise appends a new chunk.
func (u UnlockChunks) Add(value math.Int, era uint32) (UnlockChunks, error) {
	if n := len(u); n > 0 && u[n-1].Era == era {
		out := u.clone()
		out[n-1].Value = out[n-1].Value.Add(value)
		return out, nil
	}
	if len(u) >= MaxUnlockingChunks {
		return u, ErrNoMoreChunks.Wrapf("%d chunks already scheduled", len(u))
	}
	return append(u.clone(), UnlockChunk{Value: value, Era: era}), nil
}

// Split separates chunks matured at currentEra from the ones still pending.
func (u UnlockChunks) Split(currentEra uint32) (matured math.Int, pending UnlockChunks) {
	matured = math.ZeroInt()
	pending = make(UnlockChunks, 0, len(u))
	for _, chunk := range u {
		if chunk.Era <= currentEra {
			matured = matured.Add(chunk.Value)
			continue
		}
		pending = append(pending, chunk)
	}
	return matured, pending
}

func (u UnlockChunks) Sum() math.Int {
	sum := math.ZeroInt()
	for _, chunk := range u {
		sum = sum.Add(chunk.Value)
	}
	return sum
}

func (u UnlockChunks) clone() UnlockChunks {
	return append(make(UnlockChunks, 0, len(u)+1), u...)
}

// StakingLedger mirrors the bonded state of one remote delegate account.
// Total always equals Active plus the sum of Unlocking.
type StakingLedger struct {
	Stash     string       `json:"stash"`
	Total     math.Int     `json:"total"`
	Active    math.Int     `json:"active"`
	Unlocking UnlockChunks `json:"unlocking"`
}

func NewStakingLedger(stash string, value math.Int) StakingLedger {
	return StakingLedger{
		Stash:     stash,
		Total:     value,
		Active:    value,
		Unlocking: UnlockChunks{},
	}
}

func (l *StakingLedger) BondExtra(value math.Int) {
	l.Total = l.Total.Add(value)
	l.Active = l.Active.Add(value)
}

// Unbond moves value from Active into an unlocking chunk maturing at targetEra.
func (l *StakingLedger) Unbond(value math.Int, targetEra uint32) error {
	if value.GT(l.Active) {
		return ErrArithmetic.Wrapf("unbond %s exceeds active %s", value, l.Active)
	}
	unlocking, err := l.Unlocking.Add(value, targetEra)
	if err != nil {
		return err
	}
	l.Unlocking = unlocking
	l.Active = l.Active.Sub(value)
	return nil
}

// Rebond moves up to value from the latest unlocking chunks back into Active
// and returns the amount actually rebonded.
func (l *StakingLedger) Rebond(value math.Int) math.Int {
	remaining := value
	unlocking := l.Unlocking.clone()
	for len(unlocking) > 0 && remaining.IsPositive() {
		last := &unlocking[len(unlocking)-1]
		if last.Value.LTE(remaining) {
			remaining = remaining.Sub(last.Value)
			unlocking = unlocking[:len(unlocking)-1]
			continue
		}
		last.Value = last.Value.Sub(remaining)
		remaining = math.ZeroInt()
	}
	rebonded := value.Sub(remaining)
	l.Unlocking = unlocking
	l.Active = l.Active.Add(rebonded)
	return rebonded
}

// ConsolidateUnlocked drops matured chunks and returns their sum, now withdrawable.
func (l *StakingLedger) ConsolidateUnlocked(currentEra uint32) math.Int {
	matured, pending := l.Unlocking.Split(currentEra)
	l.Unlocking = pending
	l.Total = l.Total.Sub(matured)
	return matured
}

// Unbonding is the part of Total not actively bonded.
func (l StakingLedger) Unbonding() math.Int {
	return l.Total.Sub(l.Active)
}

// Unbonded is the part of Unlocking that has matured by currentEra.
func (l StakingLedger) Unbonded(currentEra uint32) math.Int {
	matured, _ := l.Unlocking.Split(currentEra)
	return matured
}

func (l StakingLedger) Equal(other StakingLedger) bool {
	if l.Stash != other.Stash || !l.Total.Equal(other.Total) || !l.Active.Equal(other.Active) {
		return false
	}
	return l.Unlocking.Equal(other.Unlocking)
}

func (u UnlockChunks) Equal(other UnlockChunks) bool {
	if len(u) != len(other) {
		return false
	}
	for i := range u {
		if u[i].Era != other[i].Era || !u[i].Value.Equal(other[i].Value) {
			return false
		}
	}
	return true
}

func (l StakingLedger) Validate() error {
	if l.Total.IsNil() || l.Active.IsNil() {
		return ErrInvalidStakingLedger.Wrap("amounts must be set")
	}
	if l.Active.IsNegative() || l.Total.IsNegative() {
		return ErrInvalidStakingLedger.Wrap("amounts must be non-negative")
	}
	if len(l.Unlocking) > MaxUnlockingChunks {
		return ErrInvalidStakingLedger.Wrapf("%d unlocking chunks exceed the limit", len(l.Unlocking))
	}
	for _, chunk := range l.Unlocking {
		if chunk.Value.IsNil() || !chunk.Value.IsPositive() {
			return ErrInvalidStakingLedger.Wrap("unlocking chunk must be positive")
		}
	}
	if !l.Total.Equal(l.Active.Add(l.Unlocking.Sum())) {
		return ErrInvalidStakingLedger.Wrapf("total %s != active %s + unlocking %s", l.Total, l.Active, l.Unlocking.Sum())
	}
	return nil
}
