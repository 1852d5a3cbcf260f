package chains

import (
	"context"
	"slices"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

const maxSuggestions = 3

// Registry resolves network names against a NetworkRegistry
type Registry struct {
	networks domain.NetworkRegistry
	names    []string
}

// NewRegistry creates a registry from an already built network map
func NewRegistry(networks domain.NetworkRegistry) *Registry {
	names := lo.Keys(networks)
	slices.Sort(names)
	return &Registry{
		networks: networks,
		names:    names,
	}
}

// NewDefaultRegistry creates a registry from the embedded catalog
func NewDefaultRegistry() (*Registry, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewRegistry(BuildRegistry(catalog)), nil
}

// Lookup returns the chain descriptor registered under name
func (r *Registry) Lookup(ctx context.Context, name string) (*domain.ChainDescriptor, error) {
	chain, ok := r.networks[name]
	if !ok {
		return nil, &domain.UnknownNetworkError{
			Name:        name,
			Suggestions: r.suggest(name),
		}
	}
	return &chain, nil
}

// Networks returns all registered chains sorted by network name
func (r *Registry) Networks(ctx context.Context) []domain.ChainDescriptor {
	return lo.Map(r.names, func(name string, _ int) domain.ChainDescriptor {
		return r.networks[name]
	})
}

// suggest returns the closest network names for a mistyped input
func (r *Registry) suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, r.names)
	suggestions := lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// Ensure the registry implements the interface
var _ usecase.ChainRegistry = (*Registry)(nil)
