package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the catalog as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks available")
		return nil
	}

	title := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "TYPE", "PROPOSALS", "DEFAULT RPC"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, network := range result.Networks {
		kind := "mainnet"
		if network.Chain.Testnet {
			kind = "testnet"
		}

		proposals := "✗"
		if network.RelaySupported() {
			proposals = "✓"
		}
		if r.color {
			if network.RelaySupported() {
				proposals = successStyle.Sprint(proposals)
			} else {
				proposals = faintStyle.Sprint(proposals)
			}
		}

		t.AppendRow(table.Row{
			network.Chain.Name,
			network.Chain.ID,
			title.String(kind),
			proposals,
			network.Chain.DefaultRPCURL(),
		})
	}

	t.Render()
	return nil
}
