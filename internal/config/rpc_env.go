package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// RPCOverride returns the RPC URL that replaces the catalog default for a network,
// or "" when none is configured. Precedence: --rpc-url, <NETWORK>_RPC_URL,
// foundry.toml [rpc_endpoints].
func (c *RuntimeConfig) RPCOverride(networkName string) string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	if url := os.Getenv(GenerateEnvVarName(networkName)); url != "" {
		return url
	}
	if url := c.RPCEndpoints[networkName]; url != "" {
		// unresolved references expand to nothing
		if _, unresolved := DetectEnvVar(url); !unresolved {
			return url
		}
	}
	return ""
}
