package domain

// ChainDescriptor describes an EVM chain known to the catalog
type ChainDescriptor struct {
	Name        string   `yaml:"name" json:"name"`
	DisplayName string   `yaml:"displayName" json:"displayName"`
	ID          uint64   `yaml:"id" json:"id"`
	RPCURLs     []string `yaml:"rpcUrls" json:"rpcUrls"`
	ExplorerURL string   `yaml:"explorer,omitempty" json:"explorer,omitempty"`
	Testnet     bool     `yaml:"testnet,omitempty" json:"testnet,omitempty"`
}

// DefaultRPCURL returns the first RPC URL, or "" when the descriptor has none.
func (c ChainDescriptor) DefaultRPCURL() string {
	if len(c.RPCURLs) == 0 {
		return ""
	}
	return c.RPCURLs[0]
}

// NetworkRegistry maps network names to chain descriptors
type NetworkRegistry map[string]ChainDescriptor

// RelayServiceConfig configures a Safe Transaction Service client
type RelayServiceConfig struct {
	ChainID    uint64
	ServiceURL string
}
