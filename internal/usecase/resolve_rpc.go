package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/safe-propose/internal/domain"
)

// ResolveRPCParams contains parameters for resolving an RPC URL
type ResolveRPCParams struct {
	Network string
}

// Validate checks that a network was given
func (p ResolveRPCParams) Validate() error {
	if p.Network == "" {
		return &domain.MissingArgumentError{Flag: "network", Message: "Network required"}
	}
	return nil
}

// ResolveRPCResult contains the resolved endpoint
type ResolveRPCResult struct {
	Network string
	ChainID uint64
	RPCURL  string
}

// ResolveRPC looks up the default RPC endpoint of a network
type ResolveRPC struct {
	registry ChainRegistry
}

// NewResolveRPC creates a new ResolveRPC use case
func NewResolveRPC(registry ChainRegistry) *ResolveRPC {
	return &ResolveRPC{
		registry: registry,
	}
}

// Run executes the use case
func (uc *ResolveRPC) Run(ctx context.Context, params ResolveRPCParams) (*ResolveRPCResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	chain, err := uc.registry.Lookup(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	url := chain.DefaultRPCURL()
	if url == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoRPCURL, params.Network)
	}

	return &ResolveRPCResult{
		Network: params.Network,
		ChainID: chain.ID,
		RPCURL:  url,
	}, nil
}
