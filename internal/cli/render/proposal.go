package render

import (
	"context"
	"fmt"
	"io"

	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// ProposalRenderer prints the proposer's informational lines
type ProposalRenderer struct {
	out io.Writer
}

// NewProposalRenderer creates a new proposal renderer
func NewProposalRenderer(out io.Writer) *ProposalRenderer {
	return &ProposalRenderer{out: out}
}

// ProposalSigned prints who signed, for which Safe, on which network and where the call goes
func (r *ProposalRenderer) ProposalSigned(ctx context.Context, network string, proposal *domain.SignedProposal) {
	r.line("Signer Address", addressStyle.Sprint(proposal.SenderAddress))
	r.line("Safe Address", addressStyle.Sprint(proposal.SafeAddress))
	r.line("Network", network)
	r.line("Proposing transaction to", addressStyle.Sprint(proposal.Transaction.To))
}

// ProposalSubmitted prints the confirmation line
func (r *ProposalRenderer) ProposalSubmitted(ctx context.Context, proposal *domain.SignedProposal) {
	fmt.Fprintf(r.out, "%s %s\n", successStyle.Sprint("Transaction proposed"), hashStyle.Sprint(proposal.SafeTxHash))
}

// Render prints the outcome of a proposal that was not submitted
func (r *ProposalRenderer) Render(result *usecase.ProposeTransactionResult) error {
	if result.Submitted {
		return nil
	}

	p := result.Proposal
	fmt.Fprintln(r.out, faintStyle.Sprint("Dry run, transaction not proposed"))
	r.line("Nonce", fmt.Sprintf("%d", p.Transaction.Nonce))
	r.line("Safe Tx Hash", hashStyle.Sprint(p.SafeTxHash))
	r.line("Signature", p.SenderSignature)
	return nil
}

func (r *ProposalRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint(label), value)
}

var (
	_ usecase.ProposalReporter                    = (*ProposalRenderer)(nil)
	_ Renderer[*usecase.ProposeTransactionResult] = (*ProposalRenderer)(nil)
)
