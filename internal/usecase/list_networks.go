package usecase

import (
	"context"

	"github.com/trebuchet-org/safe-propose/internal/domain"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// RelayOnly keeps only networks with a transaction service
	RelayOnly bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents a catalog network and its transaction service support
type NetworkStatus struct {
	Chain      domain.ChainDescriptor
	ServiceURL string
}

// RelaySupported reports whether proposals can be made on the network
func (s NetworkStatus) RelaySupported() bool {
	return s.ServiceURL != ""
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	registry ChainRegistry
	relays   RelayServiceFactory
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(registry ChainRegistry, relays RelayServiceFactory) *ListNetworks {
	return &ListNetworks{
		registry: registry,
		relays:   relays,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	chains := uc.registry.Networks(ctx)

	networks := make([]NetworkStatus, 0, len(chains))
	for _, chain := range chains {
		cfg, ok := uc.relays.ServiceConfig(chain.ID)
		if params.RelayOnly && !ok {
			continue
		}
		networks = append(networks, NetworkStatus{
			Chain:      chain,
			ServiceURL: cfg.ServiceURL,
		})
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
