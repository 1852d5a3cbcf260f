package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("rpc-url", "", "")
	cmd.Flags().String("tx-service-url", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().Bool("interactive", false, "")
	cmd.Flags().Bool("debug", false, "")
	return cmd
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		root := t.TempDir()
		v := SetupViper(root, newTestCommand())

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.False(t, cfg.Debug)
		assert.False(t, cfg.Interactive)
		assert.False(t, cfg.DryRun)
		assert.Empty(t, cfg.RPCURL)
		assert.Empty(t, cfg.RPCEndpoints)
	})

	t.Run("flags are bound", func(t *testing.T) {
		root := t.TempDir()
		cmd := newTestCommand()
		require.NoError(t, cmd.Flags().Parse([]string{
			"--rpc-url", "http://localhost:8545",
			"--tx-service-url", "http://localhost:8000/api",
			"--dry-run",
			"--interactive",
		}))

		cfg, err := Provider(SetupViper(root, cmd))
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
		assert.Equal(t, "http://localhost:8000/api", cfg.TxServiceURL)
		assert.True(t, cfg.DryRun)
		assert.True(t, cfg.Interactive)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SAFE_PROPOSE_TIMEOUT", "90s")
		t.Setenv("SAFE_PROPOSE_DEBUG", "true")

		cfg, err := Provider(SetupViper(t.TempDir(), newTestCommand()))
		require.NoError(t, err)

		assert.Equal(t, 90*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("loads foundry.toml endpoints and .env", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(`[rpc_endpoints]
sepolia = "${PROVIDER_TEST_SEPOLIA}"
`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("PROVIDER_TEST_SEPOLIA=https://from-dotenv.example\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("PROVIDER_TEST_SEPOLIA") })
		t.Setenv("SEPOLIA_RPC_URL", "")

		cfg, err := Provider(SetupViper(root, newTestCommand()))
		require.NoError(t, err)

		assert.Equal(t, "https://from-dotenv.example", cfg.RPCEndpoints["sepolia"])
		assert.Equal(t, "https://from-dotenv.example", cfg.RPCOverride("sepolia"))
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foundry.toml"), []byte(""), 0644))
	nested := filepath.Join(root, "script", "deploy")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)

	got, err := FindProjectRoot()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}
