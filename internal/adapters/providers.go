package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/safe-propose/internal/adapters/chains"
	"github.com/trebuchet-org/safe-propose/internal/adapters/interactive"
	"github.com/trebuchet-org/safe-propose/internal/adapters/protocol"
	"github.com/trebuchet-org/safe-propose/internal/adapters/safe"
	"github.com/trebuchet-org/safe-propose/internal/adapters/signer"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// ChainSet provides the embedded chain catalog
var ChainSet = wire.NewSet(
	chains.NewDefaultRegistry,
	wire.Bind(new(usecase.ChainRegistry), new(*chains.Registry)),
)

// SignerSet provides private key signers
var SignerSet = wire.NewSet(
	signer.NewProvider,
	wire.Bind(new(usecase.SignerProvider), new(*signer.Provider)),
)

// RelaySet provides Safe Transaction Service clients
var RelaySet = wire.NewSet(
	safe.NewRelayFactory,
	wire.Bind(new(usecase.RelayServiceFactory), new(*safe.RelayFactory)),
)

// ProtocolSet provides on-chain Safe access
var ProtocolSet = wire.NewSet(
	protocol.NewConnector,
	wire.Bind(new(usecase.ProtocolConnector), new(*protocol.Connector)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.SafeSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ChainSet,
	SignerSet,
	RelaySet,
	ProtocolSet,
	InteractiveSet,
)
