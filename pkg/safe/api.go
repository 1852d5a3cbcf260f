package safe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// SafeInfo is the service's view of a Safe contract
type SafeInfo struct {
	Address         string      `json:"address"`
	Nonce           json.Number `json:"nonce"`
	Threshold       int         `json:"threshold"`
	Owners          []string    `json:"owners"`
	MasterCopy      string      `json:"masterCopy"`
	Modules         []string    `json:"modules"`
	FallbackHandler string      `json:"fallbackHandler"`
	Guard           string      `json:"guard"`
	Version         string      `json:"version"`
}

// MultisigTransaction represents a Safe multisig transaction
type MultisigTransaction struct {
	Safe                  string         `json:"safe"`
	To                    string         `json:"to"`
	Value                 string         `json:"value"`
	Data                  *string        `json:"data"`
	Operation             int            `json:"operation"`
	SafeTxGas             json.Number    `json:"safeTxGas"`
	BaseGas               json.Number    `json:"baseGas"`
	GasPrice              string         `json:"gasPrice"`
	GasToken              string         `json:"gasToken"`
	RefundReceiver        string         `json:"refundReceiver"`
	Nonce                 json.Number    `json:"nonce"`
	ExecutionDate         *time.Time     `json:"executionDate"`
	SubmissionDate        time.Time      `json:"submissionDate"`
	Modified              time.Time      `json:"modified"`
	BlockNumber           *int64         `json:"blockNumber"`
	TransactionHash       *string        `json:"transactionHash"`
	SafeTxHash            string         `json:"safeTxHash"`
	Proposer              *string        `json:"proposer"`
	Executor              *string        `json:"executor"`
	IsExecuted            bool           `json:"isExecuted"`
	IsSuccessful          *bool          `json:"isSuccessful"`
	Origin                string         `json:"origin"`
	ConfirmationsRequired int            `json:"confirmationsRequired"`
	Confirmations         []Confirmation `json:"confirmations"`
	Trusted               bool           `json:"trusted"`
	Signatures            *string        `json:"signatures"`
}

// Confirmation represents a confirmation on a Safe transaction
type Confirmation struct {
	Owner           string    `json:"owner"`
	SubmissionDate  time.Time `json:"submissionDate"`
	TransactionHash *string   `json:"transactionHash"`
	Signature       string    `json:"signature"`
	SignatureType   string    `json:"signatureType"`
}

// ProposeTransactionRequest is the body accepted by the multisig-transactions endpoint
type ProposeTransactionRequest struct {
	To                      string `json:"to"`
	Value                   string `json:"value"`
	Data                    string `json:"data"`
	Operation               uint8  `json:"operation"`
	SafeTxGas               string `json:"safeTxGas"`
	BaseGas                 string `json:"baseGas"`
	GasPrice                string `json:"gasPrice"`
	GasToken                string `json:"gasToken"`
	RefundReceiver          string `json:"refundReceiver"`
	Nonce                   uint64 `json:"nonce"`
	ContractTransactionHash string `json:"contractTransactionHash"`
	Sender                  string `json:"sender"`
	Signature               string `json:"signature"`
	Origin                  string `json:"origin,omitempty"`
}

// GetSafesByOwner lists the Safes an address is an owner of
func (c *Client) GetSafesByOwner(ctx context.Context, owner common.Address) ([]common.Address, error) {
	var result struct {
		Safes []string `json:"safes"`
	}

	if err := c.getJSON(ctx, fmt.Sprintf("/v1/owners/%s/safes/", owner.Hex()), &result); err != nil {
		return nil, err
	}

	safes := make([]common.Address, 0, len(result.Safes))
	for _, s := range result.Safes {
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("service returned invalid safe address %q", s)
		}
		safes = append(safes, common.HexToAddress(s))
	}

	return safes, nil
}

// GetSafeInfo retrieves the service's record of a Safe
func (c *Client) GetSafeInfo(ctx context.Context, safeAddress common.Address) (*SafeInfo, error) {
	var info SafeInfo
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/safes/%s/", safeAddress.Hex()), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetPendingTransactions retrieves unexecuted transactions with a nonce of at least minNonce, highest nonce first
func (c *Client) GetPendingTransactions(ctx context.Context, safeAddress common.Address, minNonce uint64) ([]*MultisigTransaction, error) {
	var result struct {
		Results []*MultisigTransaction `json:"results"`
	}

	path := fmt.Sprintf("/v1/safes/%s/multisig-transactions/?executed=false&nonce__gte=%d&ordering=-nonce", safeAddress.Hex(), minNonce)
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}

	return result.Results, nil
}

// GetNextNonce returns the next unused nonce for a Safe, taking queued transactions into account.
// Pending entries below the Safe's nonce were replaced or rejected and never count.
func (c *Client) GetNextNonce(ctx context.Context, safeAddress common.Address) (uint64, error) {
	info, err := c.GetSafeInfo(ctx, safeAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to get safe info: %w", err)
	}

	safeNonce, err := parseNumber(info.Nonce)
	if err != nil {
		return 0, fmt.Errorf("invalid safe nonce: %w", err)
	}

	pending, err := c.GetPendingTransactions(ctx, safeAddress, safeNonce)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending transactions: %w", err)
	}

	next := safeNonce
	for _, tx := range pending {
		nonce, err := parseNumber(tx.Nonce)
		if err != nil {
			return 0, fmt.Errorf("invalid nonce in pending transaction %s: %w", tx.SafeTxHash, err)
		}
		next = max(next, nonce+1)
	}
	return next, nil
}

// ProposeTransaction submits a signed transaction to the service
func (c *Client) ProposeTransaction(ctx context.Context, safeAddress common.Address, req ProposeTransactionRequest) error {
	path := fmt.Sprintf("/v1/safes/%s/multisig-transactions/", safeAddress.Hex())
	return c.postJSON(ctx, path, req, http.StatusCreated)
}

// GetTransaction retrieves a Safe transaction by its hash
func (c *Client) GetTransaction(ctx context.Context, safeTxHash common.Hash) (*MultisigTransaction, error) {
	var tx MultisigTransaction
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/multisig-transactions/%s/", safeTxHash.Hex()), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// parseNumber accepts both JSON numbers and numeric strings, which the service uses interchangeably
func parseNumber(n json.Number) (uint64, error) {
	if n == "" {
		return 0, fmt.Errorf("empty number")
	}
	return strconv.ParseUint(n.String(), 10, 64)
}
