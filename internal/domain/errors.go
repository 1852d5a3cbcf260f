package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrMissingArgument is returned when a required command line argument is absent
	ErrMissingArgument = errors.New("missing argument")

	// ErrNetworkNotFound is returned when a network name is not in the chain registry
	ErrNetworkNotFound = errors.New("network not found")

	// ErrNoRPCURL is returned when a chain descriptor carries no RPC endpoints
	ErrNoRPCURL = errors.New("no RPC URL")

	// ErrUnsupportedRelayChain is returned when the transaction service has no URL for a chain ID
	ErrUnsupportedRelayChain = errors.New("unsupported chain for relay")

	// ErrNoOwnedSafe is returned when the signer owns no Safe on the chain
	ErrNoOwnedSafe = errors.New("no owned safe")

	// ErrSafeNotOwned is returned when a requested Safe is not owned by the signer
	ErrSafeNotOwned = errors.New("safe not owned by signer")

	// ErrInvalidPrivateKey is returned when a private key is not 32 bytes of hex
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidCalldata is returned when calldata is not hex encoded
	ErrInvalidCalldata = errors.New("invalid calldata")

	// ErrChainIDMismatch is returned when the RPC endpoint serves a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrSafeNotDeployed is returned when there is no contract code at the Safe address
	ErrSafeNotDeployed = errors.New("safe not deployed")

	// ErrBatchNotSupported is returned when more than one request is built into a Safe transaction
	ErrBatchNotSupported = errors.New("batched transactions not supported")

	// ErrRelayRequest is returned when the transaction service rejects a request
	ErrRelayRequest = errors.New("relay request failed")
)

// MissingArgumentError reports the first required flag found absent.
type MissingArgumentError struct {
	Flag    string
	Message string
}

func (e *MissingArgumentError) Error() string {
	return e.Message
}

func (e *MissingArgumentError) Unwrap() error {
	return ErrMissingArgument
}

// UnknownNetworkError is returned when a network name can't be resolved
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network: %s", e.Name)
	}
	return fmt.Sprintf("unknown network: %s (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownNetworkError) Unwrap() error {
	return ErrNetworkNotFound
}

// RelayError carries the response of a failed transaction service call
type RelayError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d, body: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *RelayError) Unwrap() error {
	return ErrRelayRequest
}
