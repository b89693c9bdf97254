package engine

import (
	"encoding/json"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/internal/outbox"
	"github.com/productscience/liquidstaking/logging"
	bookkeepertypes "github.com/productscience/liquidstaking/x/bookkeeper/types"
	liquidstaking "github.com/productscience/liquidstaking/x/liquidstaking/module"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// Genesis is the whole engine state: the staking module, the token ledger
// and the queue of unpublished remote requests.
type Genesis struct {
	LiquidStaking types.GenesisState           `json:"liquidstaking"`
	Bookkeeper    bookkeepertypes.GenesisState `json:"bookkeeper"`
	Outbox        outbox.GenesisState          `json:"outbox"`
}

func DefaultGenesis() Genesis {
	return Genesis{
		LiquidStaking: *types.DefaultGenesis(),
		Bookkeeper:    *bookkeepertypes.DefaultGenesis(),
		Outbox:        outbox.GenesisState{Entries: []types.PendingRequest{}},
	}
}

func (g Genesis) Validate() error {
	if err := g.LiquidStaking.Validate(); err != nil {
		return errors.Wrap(err, "liquidstaking")
	}
	if err := g.Bookkeeper.Validate(); err != nil {
		return errors.Wrap(err, "bookkeeper")
	}
	// correlation ids come from the outbox sequence, so every id in use is below it
	for _, p := range g.LiquidStaking.PendingRequests {
		if p.CorrelationID >= g.Outbox.Sequence {
			return errors.Errorf("pending request %d is not below outbox sequence %d", p.CorrelationID, g.Outbox.Sequence)
		}
	}
	return nil
}

func ReadGenesisFile(path string) (Genesis, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, errors.Wrap(err, "failed to read genesis")
	}
	var g Genesis
	if err := json.Unmarshal(bz, &g); err != nil {
		return Genesis{}, errors.Wrap(err, "failed to decode genesis")
	}
	return g, nil
}

// InitGenesis loads g into an engine that was never initialized.
func (e *Engine) InitGenesis(g Genesis) error {
	if e.Initialized() {
		return errors.New("engine state already initialized")
	}
	if err := g.Validate(); err != nil {
		return err
	}
	err := e.Execute(func(ctx sdk.Context) error {
		e.Ledger.InitGenesis(ctx, g.Bookkeeper)
		liquidstaking.InitGenesis(ctx, e.Keeper, g.LiquidStaking)
		return e.Outbox.InitGenesis(ctx, g.Outbox)
	})
	if err != nil {
		return err
	}
	logging.Info("genesis loaded", types.Genesis,
		"ledgers", len(g.LiquidStaking.StakingLedgers),
		"pending_requests", len(g.LiquidStaking.PendingRequests),
		"outbox_sequence", g.Outbox.Sequence)
	return nil
}

func (e *Engine) ExportGenesis() (Genesis, error) {
	var g Genesis
	err := e.View(func(ctx sdk.Context) error {
		outboxState, err := e.Outbox.ExportGenesis(ctx)
		if err != nil {
			return err
		}
		g = Genesis{
			LiquidStaking: *liquidstaking.ExportGenesis(ctx, e.Keeper),
			Bookkeeper:    *e.Ledger.ExportGenesis(ctx),
			Outbox:        outboxState,
		}
		return nil
	})
	return g, err
}
