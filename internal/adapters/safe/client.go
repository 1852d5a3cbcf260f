package safe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/safe-propose/internal/config"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
	"github.com/trebuchet-org/safe-propose/pkg/safe"
)

// proposalOrigin tags proposals made by this tool in the transaction service
const proposalOrigin = "safe-propose"

// RelayFactory creates transaction service clients per chain
type RelayFactory struct {
	opts []safe.Option
	log  *slog.Logger
}

// NewRelayFactory creates a factory using the runtime HTTP settings
func NewRelayFactory(cfg *config.RuntimeConfig, log *slog.Logger) *RelayFactory {
	var opts []safe.Option
	if cfg.RequestTimeout > 0 {
		opts = append(opts, safe.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	}
	return &RelayFactory{
		opts: opts,
		log:  log.With("component", "RelayFactory"),
	}
}

// ServiceConfig returns the built-in service configuration for a chain
func (f *RelayFactory) ServiceConfig(chainID uint64) (domain.RelayServiceConfig, bool) {
	return safe.RelayConfigFor(chainID)
}

// ForChain creates a client for the configured service
func (f *RelayFactory) ForChain(ctx context.Context, cfg domain.RelayServiceConfig) (usecase.RelayService, error) {
	client, err := safe.NewClient(cfg, f.opts...)
	if err != nil {
		return nil, err
	}
	f.log.Debug("created transaction service client", "chainId", cfg.ChainID, "url", client.ServiceURL())
	return &ClientAdapter{client: client, log: f.log}, nil
}

// ClientAdapter wraps the Safe Transaction Service client to implement RelayService
type ClientAdapter struct {
	client *safe.Client
	log    *slog.Logger
}

// SafesByOwner lists the Safes owned by an address
func (c *ClientAdapter) SafesByOwner(ctx context.Context, owner common.Address) ([]common.Address, error) {
	safes, err := c.client.GetSafesByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	c.log.Debug("fetched safes by owner", "owner", owner.Hex(), "count", len(safes))
	return safes, nil
}

// NextNonce returns the next unused nonce of a Safe
func (c *ClientAdapter) NextNonce(ctx context.Context, safeAddress common.Address) (uint64, error) {
	return c.client.GetNextNonce(ctx, safeAddress)
}

// ProposeTransaction submits a signed proposal
func (c *ClientAdapter) ProposeTransaction(ctx context.Context, proposal *domain.SignedProposal) error {
	if proposal.Transaction == nil {
		return fmt.Errorf("proposal has no transaction")
	}
	if !common.IsHexAddress(proposal.SafeAddress) {
		return fmt.Errorf("%w: safe %q", domain.ErrInvalidAddress, proposal.SafeAddress)
	}

	tx := proposal.Transaction
	req := safe.ProposeTransactionRequest{
		To:                      common.HexToAddress(tx.To).Hex(),
		Value:                   tx.Value,
		Data:                    tx.Data,
		Operation:               tx.Operation,
		SafeTxGas:               tx.SafeTxGas,
		BaseGas:                 tx.BaseGas,
		GasPrice:                tx.GasPrice,
		GasToken:                tx.GasToken,
		RefundReceiver:          tx.RefundReceiver,
		Nonce:                   tx.Nonce,
		ContractTransactionHash: proposal.SafeTxHash,
		Sender:                  common.HexToAddress(proposal.SenderAddress).Hex(),
		Signature:               proposal.SenderSignature,
		Origin:                  proposalOrigin,
	}

	c.log.Debug("proposing transaction", "safe", proposal.SafeAddress, "safeTxHash", proposal.SafeTxHash, "nonce", tx.Nonce)
	return c.client.ProposeTransaction(ctx, common.HexToAddress(proposal.SafeAddress), req)
}

// TransactionStatus retrieves the service's record of a proposed transaction
func (c *ClientAdapter) TransactionStatus(ctx context.Context, safeTxHash common.Hash) (*models.SafeTransactionStatus, error) {
	tx, err := c.client.GetTransaction(ctx, safeTxHash)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction details: %w", err)
	}

	status := &models.SafeTransactionStatus{
		SafeTxHash:            safeTxHash.Hex(),
		SafeAddress:           tx.Safe,
		ChainID:               c.client.ChainID(),
		To:                    tx.To,
		Value:                 tx.Value,
		Operation:             uint8(tx.Operation),
		ProposedAt:            tx.SubmissionDate,
		ConfirmationsRequired: tx.ConfirmationsRequired,
		IsExecuted:            tx.IsExecuted,
	}
	if nonce, err := tx.Nonce.Int64(); err == nil && nonce >= 0 {
		status.Nonce = uint64(nonce)
	}
	if tx.Data != nil {
		status.Data = *tx.Data
	}
	if tx.Proposer != nil {
		status.ProposedBy = *tx.Proposer
	}
	if tx.IsExecuted && tx.TransactionHash != nil {
		status.ExecutionTxHash = *tx.TransactionHash
	}

	for _, conf := range tx.Confirmations {
		status.Confirmations = append(status.Confirmations, models.Confirmation{
			Signer:      conf.Owner,
			Signature:   conf.Signature,
			ConfirmedAt: conf.SubmissionDate,
		})
	}

	return status, nil
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.RelayServiceFactory = (*RelayFactory)(nil)
	_ usecase.RelayService        = (*ClientAdapter)(nil)
)
