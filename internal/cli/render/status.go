package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/safe-propose/internal/domain/models"
)

// StatusRenderer renders a proposed transaction as recorded by the transaction service
type StatusRenderer struct {
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer) *StatusRenderer {
	return &StatusRenderer{out: out}
}

// Render prints the transaction and its confirmations
func (r *StatusRenderer) Render(status *models.SafeTransactionStatus) error {
	state := hashStyle.Sprint("pending")
	if status.IsExecuted {
		state = successStyle.Sprint("executed")
	}

	r.line("Safe Tx Hash", hashStyle.Sprint(status.SafeTxHash))
	r.line("Safe", addressStyle.Sprint(status.SafeAddress))
	r.line("Nonce", fmt.Sprintf("%d", status.Nonce))
	r.line("To", addressStyle.Sprint(status.To))
	r.line("Value", status.Value)
	if status.Data != "" {
		r.line("Data", status.Data)
	}
	if status.ProposedBy != "" {
		r.line("Proposed By", status.ProposedBy)
	}
	r.line("Status", state)
	if status.ExecutionTxHash != "" {
		r.line("Execution Tx", shortHash(status.ExecutionTxHash))
	}

	r.line("Confirmations", fmt.Sprintf("%d/%d", len(status.Confirmations), status.ConfirmationsRequired))
	for _, c := range status.Confirmations {
		fmt.Fprintf(r.out, "  %s %s\n", successStyle.Sprint("✓"), c.Signer)
	}
	return nil
}

func (r *StatusRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprintf("%-14s", label+":"), value)
}

var _ Renderer[*models.SafeTransactionStatus] = (*StatusRenderer)(nil)
