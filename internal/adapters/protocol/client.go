package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// ethSignVOffset marks a signature as eth_sign flavoured for the Safe contract
const ethSignVOffset = 4

const safeABIJSON = `[
	{"inputs":[],"name":"VERSION","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"}
]`

var safeABI = mustParseABI(safeABIJSON)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// Backend is the part of an RPC client the protocol client needs
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// ClientConfig binds a protocol client to a Safe
type ClientConfig struct {
	ChainID     uint64
	SafeAddress common.Address
	Signer      usecase.Signer
}

// Client builds, hashes and signs transactions for a deployed Safe
type Client struct {
	backend Backend
	closer  func()
	chainID *big.Int
	address common.Address
	version *semver.Version
	signer  usecase.Signer
	log     *slog.Logger
}

// NewClient verifies the Safe is deployed on the backend's chain and reads its version
func NewClient(ctx context.Context, backend Backend, cfg ClientConfig, log *slog.Logger) (*Client, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != cfg.ChainID {
		return nil, fmt.Errorf("%w: RPC serves chain %s, expected %d", domain.ErrChainIDMismatch, chainID, cfg.ChainID)
	}

	code, err := backend.CodeAt(ctx, cfg.SafeAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", cfg.SafeAddress.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no contract at %s", domain.ErrSafeNotDeployed, cfg.SafeAddress.Hex())
	}

	version, err := readVersion(ctx, backend, cfg.SafeAddress)
	if err != nil {
		return nil, err
	}

	log.Debug("initialized safe", "safe", cfg.SafeAddress.Hex(), "version", version.String(), "chainId", chainID)

	return &Client{
		backend: backend,
		closer:  func() {},
		chainID: chainID,
		address: cfg.SafeAddress,
		version: version,
		signer:  cfg.Signer,
		log:     log,
	}, nil
}

// readVersion calls the Safe's VERSION() getter
func readVersion(ctx context.Context, backend Backend, safeAddress common.Address) (*semver.Version, error) {
	data, err := safeABI.Pack("VERSION")
	if err != nil {
		return nil, fmt.Errorf("failed to encode VERSION call: %w", err)
	}

	out, err := backend.CallContract(ctx, ethereum.CallMsg{To: &safeAddress, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read safe version: %w", err)
	}

	values, err := safeABI.Unpack("VERSION", out)
	if err != nil {
		return nil, fmt.Errorf("%w: VERSION() returned unexpected data at %s", domain.ErrSafeNotDeployed, safeAddress.Hex())
	}
	raw, ok := values[0].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected VERSION() type %T", values[0])
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid safe version %q: %w", raw, err)
	}
	return version, nil
}

// Address returns the Safe address
func (c *Client) Address() common.Address {
	return c.address
}

// Version returns the Safe contract version
func (c *Client) Version() *semver.Version {
	return c.version
}

// CreateTransaction wraps a single request into a Safe transaction with zero gas refund settings
func (c *Client) CreateTransaction(ctx context.Context, requests []domain.TransactionRequest) (*models.SafeTransaction, error) {
	switch {
	case len(requests) == 0:
		return nil, fmt.Errorf("no transaction requests")
	case len(requests) > 1:
		return nil, fmt.Errorf("%w: got %d requests", domain.ErrBatchNotSupported, len(requests))
	}

	req := requests[0]
	if !common.IsHexAddress(req.To) {
		return nil, fmt.Errorf("%w: to %q", domain.ErrInvalidAddress, req.To)
	}

	value := req.Value
	if value == "" {
		value = "0"
	}
	data := req.Data
	if data == "" {
		data = "0x"
	}

	zero := common.Address{}.Hex()
	return &models.SafeTransaction{
		To:             common.HexToAddress(req.To).Hex(),
		Value:          value,
		Data:           data,
		Operation:      uint8(req.Operation),
		SafeTxGas:      "0",
		BaseGas:        "0",
		GasPrice:       "0",
		GasToken:       zero,
		RefundReceiver: zero,
		Nonce:          req.Nonce,
	}, nil
}

// TransactionHash returns the EIP-712 hash of tx for this Safe
func (c *Client) TransactionHash(ctx context.Context, tx *models.SafeTransaction) (common.Hash, error) {
	return SafeTxHash(c.chainID, c.address, c.version, tx)
}

// SignHash signs a Safe transaction hash as an eth_sign signature accepted by the Safe contract
func (c *Client) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("safe client has no signer")
	}

	sig, err := c.signer.SignMessage(hash.Bytes())
	if err != nil {
		return nil, err
	}
	sig[len(sig)-1] += ethSignVOffset
	return sig, nil
}

// Close releases the RPC connection
func (c *Client) Close() {
	c.closer()
}

// Connector dials RPC endpoints and opens protocol clients
type Connector struct {
	log *slog.Logger
}

// NewConnector creates a new connector
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{
		log: log.With("component", "SafeProtocol"),
	}
}

// Connect dials the RPC URL and binds a client to the Safe
func (c *Connector) Connect(ctx context.Context, params usecase.ConnectParams) (usecase.ProtocolClient, error) {
	if params.Chain == nil {
		return nil, fmt.Errorf("no chain given")
	}

	c.log.Debug("dialing rpc", "network", params.Chain.Name, "url", params.RPCURL)
	rpc, err := ethclient.DialContext(ctx, params.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", params.RPCURL, err)
	}

	client, err := NewClient(ctx, rpc, ClientConfig{
		ChainID:     params.Chain.ID,
		SafeAddress: params.SafeAddress,
		Signer:      params.Signer,
	}, c.log)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	client.closer = rpc.Close

	return client, nil
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.ProtocolClient    = (*Client)(nil)
	_ usecase.ProtocolConnector = (*Connector)(nil)
)
