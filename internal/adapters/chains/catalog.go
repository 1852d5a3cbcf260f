package chains

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/trebuchet-org/safe-propose/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed chains.yaml
var catalogYAML []byte

var loadDefaultCatalog = sync.OnceValues(func() ([]domain.ChainDescriptor, error) {
	return ParseCatalog(catalogYAML)
})

// ParseCatalog decodes a YAML list of chain descriptors
func ParseCatalog(data []byte) ([]domain.ChainDescriptor, error) {
	var catalog []domain.ChainDescriptor
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse chain catalog: %w", err)
	}
	for i, chain := range catalog {
		if chain.Name == "" {
			return nil, fmt.Errorf("chain catalog entry %d has no name", i)
		}
	}
	return catalog, nil
}

// DefaultCatalog returns the embedded chain catalog. The slice is shared; callers must not modify it.
func DefaultCatalog() ([]domain.ChainDescriptor, error) {
	return loadDefaultCatalog()
}

// BuildRegistry copies every catalog entry into a name keyed registry.
// Later entries win when names repeat.
func BuildRegistry(catalog []domain.ChainDescriptor) domain.NetworkRegistry {
	registry := make(domain.NetworkRegistry, len(catalog))
	for _, chain := range catalog {
		chain.RPCURLs = append([]string(nil), chain.RPCURLs...)
		registry[chain.Name] = chain
	}
	return registry
}
