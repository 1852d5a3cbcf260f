package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safe-propose/internal/cli/render"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from the built-in chain catalog",
		Long: `List every network of the built-in chain catalog with its chain ID, default
RPC URL and whether the Safe Transaction Service supports proposals on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			relayOnly, _ := cmd.Flags().GetBool("relay-only")
			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				RelayOnly: relayOnly,
			})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().Bool("relay-only", false, "Only list networks with a Safe Transaction Service")

	return cmd
}
