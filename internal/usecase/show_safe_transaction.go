package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
)

var safeTxHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// ShowSafeTransactionParams contains parameters for looking up a proposal
type ShowSafeTransactionParams struct {
	Network      string
	SafeTxHash   string
	TxServiceURL string
}

// Validate checks the network and hash arguments
func (p ShowSafeTransactionParams) Validate() error {
	if p.Network == "" {
		return &domain.MissingArgumentError{Flag: "network", Message: "Network required"}
	}
	if !safeTxHashPattern.MatchString(p.SafeTxHash) {
		return fmt.Errorf("invalid safe transaction hash %q", p.SafeTxHash)
	}
	return nil
}

// ShowSafeTransaction fetches the transaction service's record of a proposed transaction
type ShowSafeTransaction struct {
	registry ChainRegistry
	relays   RelayServiceFactory
}

// NewShowSafeTransaction creates a new ShowSafeTransaction use case
func NewShowSafeTransaction(registry ChainRegistry, relays RelayServiceFactory) *ShowSafeTransaction {
	return &ShowSafeTransaction{
		registry: registry,
		relays:   relays,
	}
}

// Run executes the use case
func (uc *ShowSafeTransaction) Run(ctx context.Context, params ShowSafeTransactionParams) (*models.SafeTransactionStatus, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	chain, err := uc.registry.Lookup(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	cfg, ok := uc.relays.ServiceConfig(chain.ID)
	if params.TxServiceURL != "" {
		cfg.ServiceURL = params.TxServiceURL
	} else if !ok {
		return nil, fmt.Errorf("%w: %s (chain ID %d)", domain.ErrUnsupportedRelayChain, chain.Name, chain.ID)
	}

	relay, err := uc.relays.ForChain(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service client: %w", err)
	}

	status, err := relay.TransactionStatus(ctx, common.HexToHash(params.SafeTxHash))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", params.SafeTxHash, err)
	}

	return status, nil
}
