package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/safe-propose/internal/adapters/progress"
	"github.com/trebuchet-org/safe-propose/internal/app"
	"github.com/trebuchet-org/safe-propose/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// viperKey is the context key for the per-invocation viper instance
	viperKey contextKey = "viper"
	// cancelKey is the context key for the command timeout's cancel func
	cancelKey contextKey = "cancel"
)

// Execute runs a command tree and releases the command timeout however the command ends
func Execute(root *cobra.Command) error {
	_, err := execute(root)
	return err
}

func execute(root *cobra.Command) (*cobra.Command, error) {
	cmd, err := root.ExecuteContextC(context.Background())
	if cmd != nil && cmd.Context() != nil {
		if cancel, ok := cmd.Context().Value(cancelKey).(context.CancelFunc); ok {
			cancel()
		}
	}
	return cmd, err
}

// NewRootCmd creates the root command of safe-propose
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "safe-propose",
		Short: "Sign a Safe transaction and propose it to the Safe Transaction Service",
		Long: `safe-propose signs a single call on behalf of one of your Safes and proposes it
to the Safe Transaction Service, where the other owners can confirm it.

The Safe is the first one the signer owns on the network, unless --safe or
--interactive picks another. The nonce follows the Safe's pending queue.`,
		Example: `  safe-propose --network sepolia --privateKey $KEY --to 0x... --calldata 0xa9059cbb...
  safe-propose --network base --privateKey $KEY --to 0x... --calldata 0x --dry-run`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setupCommand,
		RunE:              runPropose,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().String("tx-service-url", "", "Override the Safe Transaction Service URL (including /api)")

	addProposeFlags(rootCmd)

	rootCmd.AddCommand(NewRPCCmd())
	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewRPCRootCmd creates the root command of safe-rpc
func NewRPCRootCmd() *cobra.Command {
	rootCmd := newRPCCmd("safe-rpc")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = setupCommand

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.Flags().StringP("network", "n", "", "Network to resolve (e.g., mainnet, sepolia)")

	return rootCmd
}

// setupCommand prepares configuration and the command timeout
func setupCommand(cmd *cobra.Command, args []string) error {
	// Skip for help/version commands
	if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	v := config.SetupViper(projectRoot, cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, viperKey, v)

	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		ctx = context.WithValue(ctx, cancelKey, cancel)
	}

	cmd.SetContext(ctx)
	return nil
}

// getApp retrieves the app instance from the command context, wiring it on first use.
// Commands validate their arguments before calling it.
func getApp(cmd *cobra.Command) (*app.App, error) {
	ctx := cmd.Context()
	if appInstance, ok := ctx.Value(appKey).(*app.App); ok {
		return appInstance, nil
	}

	v, ok := ctx.Value(viperKey).(*viper.Viper)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}

	appInstance, err := app.InitApp(v, progress.NewSpinnerProgressReporter())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	cmd.SetContext(context.WithValue(ctx, appKey, appInstance))
	return appInstance, nil
}
