package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and adapters and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Execution settings
	Debug          bool
	Interactive    bool
	Timeout        time.Duration
	RequestTimeout time.Duration

	// Overrides
	TxServiceURL string
	RPCURL       string

	// Command-specific settings (only populated for relevant commands)
	DryRun bool

	// RPCEndpoints holds foundry.toml [rpc_endpoints] with env vars expanded
	RPCEndpoints map[string]string
}
