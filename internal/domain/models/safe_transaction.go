package models

import "time"

// SafeTransaction is a Safe multisig transaction ready to be hashed and signed
type SafeTransaction struct {
	To             string `json:"to"`
	Value          string `json:"value"`
	Data           string `json:"data"`
	Operation      uint8  `json:"operation"` // 0 = Call, 1 = DelegateCall
	SafeTxGas      string `json:"safeTxGas"`
	BaseGas        string `json:"baseGas"`
	GasPrice       string `json:"gasPrice"`
	GasToken       string `json:"gasToken"`
	RefundReceiver string `json:"refundReceiver"`
	Nonce          uint64 `json:"nonce"`
}

// Confirmation represents a confirmation on a Safe transaction
type Confirmation struct {
	Signer      string    `json:"signer"`
	Signature   string    `json:"signature"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// SafeTransactionStatus is the transaction service's view of a proposed transaction
type SafeTransactionStatus struct {
	SafeTxHash            string         `json:"safeTxHash"`
	SafeAddress           string         `json:"safeAddress"`
	ChainID               uint64         `json:"chainId"`
	Nonce                 uint64         `json:"nonce"`
	To                    string         `json:"to"`
	Value                 string         `json:"value"`
	Data                  string         `json:"data"`
	Operation             uint8          `json:"operation"`
	ProposedBy            string         `json:"proposedBy"`
	ProposedAt            time.Time      `json:"proposedAt"`
	Confirmations         []Confirmation `json:"confirmations"`
	ConfirmationsRequired int            `json:"confirmationsRequired"`
	IsExecuted            bool           `json:"isExecuted"`
	ExecutionTxHash       string         `json:"executionTxHash,omitempty"`
}
