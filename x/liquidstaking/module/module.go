package liquidstaking

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/appmodule"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

var (
	_ appmodule.AppModule       = (*AppModule)(nil)
	_ appmodule.HasBeginBlocker = (*AppModule)(nil)
	_ appmodule.HasEndBlocker   = (*AppModule)(nil)
)

// AppModule drives the keeper from the block lifecycle: genesis import and
// export, the periodic tick and the end of each round.
type AppModule struct {
	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

// Name returns the name of the module as a string.
func (AppModule) Name() string {
	return types.ModuleName
}

// DefaultGenesis returns a default GenesisState for the module, marshalled to json.RawMessage.
func (AppModule) DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis used to validate the GenesisState, given in its json.RawMessage form.
func (AppModule) ValidateGenesis(bz json.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// InitGenesis performs the module's genesis initialization.
func (am AppModule) InitGenesis(ctx sdk.Context, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return err
	}
	if err := genState.Validate(); err != nil {
		return err
	}
	InitGenesis(ctx, am.keeper, genState)
	return nil
}

// ExportGenesis returns the module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context) (json.RawMessage, error) {
	return json.MarshalIndent(ExportGenesis(ctx, am.keeper), "", "  ")
}

// RegisterInvariants registers the invariants of the module.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, am.keeper)
}

// ConsensusVersion is a sequence number for state-breaking change of the module.
func (AppModule) ConsensusVersion() uint64 { return 1 }

func (am AppModule) BeginBlock(ctx context.Context) error {
	am.keeper.BeginBlocker(sdk.UnwrapSDKContext(ctx))
	return nil
}

func (am AppModule) EndBlock(ctx context.Context) error {
	am.keeper.EndBlocker(sdk.UnwrapSDKContext(ctx))
	return nil
}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface.
func (am AppModule) IsAppModule() {}
