package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
)

// ChainRegistry resolves network names to chain descriptors
type ChainRegistry interface {
	Lookup(ctx context.Context, name string) (*domain.ChainDescriptor, error)
	Networks(ctx context.Context) []domain.ChainDescriptor
}

// Signer is an account able to sign Safe message digests
type Signer interface {
	Address() common.Address
	SignMessage(message []byte) ([]byte, error)
}

// SignerProvider derives signers from raw key material
type SignerProvider interface {
	FromPrivateKey(privateKey string) (Signer, error)
}

// RelayService is the subset of the Safe Transaction Service used by the proposer
type RelayService interface {
	SafesByOwner(ctx context.Context, owner common.Address) ([]common.Address, error)
	NextNonce(ctx context.Context, safeAddress common.Address) (uint64, error)
	ProposeTransaction(ctx context.Context, proposal *domain.SignedProposal) error
	TransactionStatus(ctx context.Context, safeTxHash common.Hash) (*models.SafeTransactionStatus, error)
}

// RelayServiceFactory creates relay clients per chain
type RelayServiceFactory interface {
	// ServiceConfig returns the built-in service configuration for a chain.
	// ok is false, and ServiceURL empty, when the chain has no service.
	ServiceConfig(chainID uint64) (cfg domain.RelayServiceConfig, ok bool)
	ForChain(ctx context.Context, cfg domain.RelayServiceConfig) (RelayService, error)
}

// ProtocolClient builds, hashes and signs transactions for one Safe
type ProtocolClient interface {
	Address() common.Address
	CreateTransaction(ctx context.Context, requests []domain.TransactionRequest) (*models.SafeTransaction, error)
	TransactionHash(ctx context.Context, tx *models.SafeTransaction) (common.Hash, error)
	SignHash(ctx context.Context, hash common.Hash) ([]byte, error)
	Close()
}

// ConnectParams binds a protocol client to a chain, a Safe and a signer
type ConnectParams struct {
	Chain       *domain.ChainDescriptor
	RPCURL      string
	SafeAddress common.Address
	Signer      Signer
}

// ProtocolConnector opens protocol clients over an RPC connection
type ProtocolConnector interface {
	Connect(ctx context.Context, params ConnectParams) (ProtocolClient, error)
}

// SafeSelector picks one Safe when the signer owns several
type SafeSelector interface {
	SelectSafe(ctx context.Context, safes []common.Address) (common.Address, error)
}

// ProposalReporter is notified as a proposal is signed and submitted
type ProposalReporter interface {
	ProposalSigned(ctx context.Context, network string, proposal *domain.SignedProposal)
	ProposalSubmitted(ctx context.Context, proposal *domain.SignedProposal)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events and short notices meant for the terminal
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}

type nopReporter struct{}

func (nopReporter) ProposalSigned(context.Context, string, *domain.SignedProposal) {}
func (nopReporter) ProposalSubmitted(context.Context, *domain.SignedProposal)      {}
