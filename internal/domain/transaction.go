package domain

import "github.com/trebuchet-org/safe-propose/internal/domain/models"

// OperationType is the Safe operation kind
type OperationType uint8

const (
	OperationCall         OperationType = 0
	OperationDelegateCall OperationType = 1
)

func (o OperationType) String() string {
	switch o {
	case OperationCall:
		return "CALL"
	case OperationDelegateCall:
		return "DELEGATECALL"
	default:
		return "UNKNOWN"
	}
}

// TransactionRequest is a single call to be wrapped into a Safe transaction
type TransactionRequest struct {
	To        string
	Value     string
	Data      string
	Operation OperationType
	Nonce     uint64
}

// SignedProposal is the payload handed to the transaction service
type SignedProposal struct {
	SafeAddress     string
	Transaction     *models.SafeTransaction
	SafeTxHash      string
	SenderAddress   string
	SenderSignature string
}
