package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FoundryTOML represents the parts of foundry.toml the proposer reads
type FoundryTOML struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}

// LoadEnvFiles loads .env and .env.local from the project root.
// Variables already set in the environment win.
func LoadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadRPCEndpoints reads foundry.toml [rpc_endpoints] and expands env vars.
// A project without foundry.toml has no endpoints.
func loadRPCEndpoints(projectRoot string) (map[string]string, error) {
	foundryPath := filepath.Join(projectRoot, "foundry.toml")

	var raw FoundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	endpoints := make(map[string]string, len(raw.RpcEndpoints))
	for name, url := range raw.RpcEndpoints {
		endpoints[name] = os.ExpandEnv(url)
	}
	return endpoints, nil
}
