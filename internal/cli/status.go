package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safe-propose/internal/cli/render"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <safeTxHash>",
		Short: "Show a proposed transaction and its confirmations",
		Long: `Fetch a proposed transaction from the Safe Transaction Service of --network
and show its confirmations and execution state.`,
		Example: `  safe-propose status --network sepolia 0x3b8f...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			network, _ := cmd.Flags().GetString("network")
			params := usecase.ShowSafeTransactionParams{
				Network:    network,
				SafeTxHash: args[0],
			}
			if err := params.Validate(); err != nil {
				return err
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			params.TxServiceURL = app.Config.TxServiceURL

			status, err := app.ShowSafeTransaction.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewStatusRenderer(cmd.OutOrStdout()).Render(status)
		},
	}
}
