package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// NewRPCCmd creates the rpc command
func NewRPCCmd() *cobra.Command {
	return newRPCCmd("rpc")
}

func newRPCCmd(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Print the default RPC URL of a network",
		Long: `Print the first RPC URL the built-in chain catalog lists for --network.

The URL is printed verbatim. RPC overrides from flags, environment or
foundry.toml do not apply.`,
		Example: `  ` + use + ` --network sepolia`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			network, _ := cmd.Flags().GetString("network")
			params := usecase.ResolveRPCParams{Network: network}
			if err := params.Validate(); err != nil {
				return err
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveRPC.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.RPCURL)
			return nil
		},
	}
}
