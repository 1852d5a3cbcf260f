package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/safe-propose/internal/cli/render"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

func addProposeFlags(cmd *cobra.Command) {
	cmd.Flags().String("privateKey", "", "Hex private key of the signing owner (0x prefix optional)")
	cmd.Flags().String("to", "", "Address the Safe will call")
	cmd.Flags().String("calldata", "", "Hex calldata of the call")
	cmd.Flags().String("safe", "", "Safe to propose to (defaults to the signer's first Safe)")
	cmd.Flags().String("rpc-url", "", "Override the network's RPC URL (also <NETWORK>_RPC_URL)")
	cmd.Flags().Bool("dry-run", false, "Sign the transaction without proposing it")
	cmd.Flags().Bool("interactive", false, "Pick the Safe interactively when the signer owns several")
}

// proposeParams reads the required flags
func proposeParams(cmd *cobra.Command) usecase.ProposeTransactionParams {
	network, _ := cmd.Flags().GetString("network")
	privateKey, _ := cmd.Flags().GetString("privateKey")
	to, _ := cmd.Flags().GetString("to")
	calldata, _ := cmd.Flags().GetString("calldata")
	safe, _ := cmd.Flags().GetString("safe")

	return usecase.ProposeTransactionParams{
		Network:    network,
		PrivateKey: privateKey,
		To:         to,
		Calldata:   calldata,
		Safe:       safe,
	}
}

func runPropose(cmd *cobra.Command, args []string) error {
	params := proposeParams(cmd)
	if err := params.Validate(); err != nil {
		return err
	}

	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	params.RPCURL = app.Config.RPCOverride(params.Network)
	params.TxServiceURL = app.Config.TxServiceURL
	params.DryRun = app.Config.DryRun

	renderer := render.NewProposalRenderer(cmd.OutOrStdout())
	params.Reporter = renderer

	result, err := app.ProposeTransaction.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	return renderer.Render(result)
}
