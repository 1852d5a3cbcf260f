package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safe-propose/internal/adapters/chains"
	"github.com/trebuchet-org/safe-propose/internal/adapters/interactive"
	"github.com/trebuchet-org/safe-propose/internal/adapters/signer"
	"github.com/trebuchet-org/safe-propose/internal/cli/render"
	"github.com/trebuchet-org/safe-propose/internal/config"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

const (
	anvilKey  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	recipient = "0x00000000000000000000000000000000000000aa"
	calldata  = "a9059cbb"
)

var (
	signerAddress = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	safe1         = common.HexToAddress("0x1111111111111111111111111111111111111111")
	safe2         = common.HexToAddress("0x2222222222222222222222222222222222222222")
	safeTxHash    = common.HexToHash("0x5e1f4b0b0c8e6a1c3f6d2e9b7a8c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e")
	signature     = append(bytes.Repeat([]byte{0x11}, 64), 31)

	sepoliaRelay = domain.RelayServiceConfig{
		ChainID:    11155111,
		ServiceURL: "https://safe-transaction-sepolia.safe.global/api",
	}
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type proposeFixture struct {
	factory   *MockRelayFactory
	relay     *MockRelay
	connector *MockConnector
	client    *MockProtocolClient
	progress  *MockProgressSink
	out       *bytes.Buffer
	uc        *usecase.ProposeTransaction
}

func newProposeFixture(t *testing.T) *proposeFixture {
	t.Helper()

	registry, err := chains.NewDefaultRegistry()
	require.NoError(t, err)

	f := &proposeFixture{
		factory:   &MockRelayFactory{},
		relay:     &MockRelay{},
		connector: &MockConnector{},
		client:    &MockProtocolClient{},
		progress:  &MockProgressSink{},
		out:       &bytes.Buffer{},
	}
	f.uc = usecase.NewProposeTransaction(
		registry,
		signer.NewProvider(),
		f.factory,
		f.connector,
		interactive.NewSelectorAdapter(&config.RuntimeConfig{}),
		f.progress,
	)
	return f
}

func (f *proposeFixture) params() usecase.ProposeTransactionParams {
	return usecase.ProposeTransactionParams{
		Network:    "sepolia",
		PrivateKey: anvilKey,
		To:         recipient,
		Calldata:   calldata,
		Reporter:   render.NewProposalRenderer(f.out),
	}
}

func (f *proposeFixture) sampleTx() *models.SafeTransaction {
	zero := common.Address{}.Hex()
	return &models.SafeTransaction{
		To:             common.HexToAddress(recipient).Hex(),
		Value:          "0",
		Data:           "0xa9059cbb",
		SafeTxGas:      "0",
		BaseGas:        "0",
		GasPrice:       "0",
		GasToken:       zero,
		RefundReceiver: zero,
		Nonce:          5,
	}
}

// expectSigning sets up every call up to and including the signature
func (f *proposeFixture) expectSigning(safes []common.Address) *models.SafeTransaction {
	tx := f.sampleTx()

	f.factory.On("ServiceConfig", uint64(11155111)).Return(sepoliaRelay, true)
	f.factory.On("ForChain", mock.Anything, sepoliaRelay).Return(f.relay, nil)
	f.relay.On("SafesByOwner", mock.Anything, signerAddress).Return(safes, nil)
	f.connector.On("Connect", mock.Anything, mock.MatchedBy(func(p usecase.ConnectParams) bool {
		return p.Chain.ID == 11155111 &&
			p.RPCURL == "https://sepolia.drpc.org" &&
			p.SafeAddress == safe1 &&
			p.Signer.Address() == signerAddress
	})).Return(f.client, nil)
	f.relay.On("NextNonce", mock.Anything, safe1).Return(uint64(5), nil)
	f.client.On("CreateTransaction", mock.Anything, []domain.TransactionRequest{{
		To:        common.HexToAddress(recipient).Hex(),
		Value:     "0",
		Data:      "0xa9059cbb",
		Operation: domain.OperationCall,
		Nonce:     5,
	}}).Return(tx, nil)
	f.client.On("TransactionHash", mock.Anything, tx).Return(safeTxHash, nil)
	f.client.On("SignHash", mock.Anything, safeTxHash).Return(signature, nil)
	f.client.On("Address").Return(safe1)
	f.client.On("Close").Return()

	return tx
}

func TestProposeTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("signs and proposes to the first safe", func(t *testing.T) {
		f := newProposeFixture(t)
		tx := f.expectSigning([]common.Address{safe1, safe2})
		f.relay.On("ProposeTransaction", mock.Anything, mock.MatchedBy(func(p *domain.SignedProposal) bool {
			return p.SafeAddress == safe1.Hex() &&
				p.Transaction == tx &&
				p.SafeTxHash == safeTxHash.Hex() &&
				p.SenderAddress == signerAddress.Hex() &&
				p.SenderSignature == hexutil.Encode(signature)
		})).Return(nil)

		result, err := f.uc.Run(ctx, f.params())
		require.NoError(t, err)

		assert.True(t, result.Submitted)
		assert.Equal(t, uint64(11155111), result.Chain.ID)
		assert.Equal(t, safeTxHash.Hex(), result.Proposal.SafeTxHash)

		assert.Equal(t, "Signer Address "+signerAddress.Hex()+"\n"+
			"Safe Address "+safe1.Hex()+"\n"+
			"Network sepolia\n"+
			"Proposing transaction to "+tx.To+"\n"+
			"Transaction proposed "+safeTxHash.Hex()+"\n", f.out.String())

		f.factory.AssertExpectations(t)
		f.relay.AssertExpectations(t)
		f.connector.AssertExpectations(t)
		f.client.AssertExpectations(t)

		require.NotEmpty(t, f.progress.events)
		assert.Equal(t, usecase.StageCompleted, f.progress.events[len(f.progress.events)-1].Stage)
		assert.Equal(t, []string{
			signerAddress.Hex() + " owns 2 Safes, pick one with --safe or --interactive",
			"Using nonce 5",
		}, f.progress.infos)
	})

	t.Run("dry run does not propose", func(t *testing.T) {
		f := newProposeFixture(t)
		f.expectSigning([]common.Address{safe1})

		params := f.params()
		params.DryRun = true
		result, err := f.uc.Run(ctx, params)
		require.NoError(t, err)

		assert.False(t, result.Submitted)
		assert.Equal(t, hexutil.Encode(signature), result.Proposal.SenderSignature)
		f.relay.AssertNotCalled(t, "ProposeTransaction", mock.Anything, mock.Anything)
		assert.NotContains(t, f.out.String(), "Transaction proposed")
		assert.Equal(t, []string{"Using nonce 5"}, f.progress.infos)
	})

	t.Run("explicit safe must be owned", func(t *testing.T) {
		f := newProposeFixture(t)
		f.factory.On("ServiceConfig", uint64(11155111)).Return(sepoliaRelay, true)
		f.factory.On("ForChain", mock.Anything, sepoliaRelay).Return(f.relay, nil)
		f.relay.On("SafesByOwner", mock.Anything, signerAddress).Return([]common.Address{safe1}, nil)

		params := f.params()
		params.Safe = safe2.Hex()
		_, err := f.uc.Run(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSafeNotOwned)
		f.connector.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
	})

	t.Run("rpc override reaches the connector", func(t *testing.T) {
		f := newProposeFixture(t)
		f.factory.On("ServiceConfig", uint64(11155111)).Return(sepoliaRelay, true)
		f.factory.On("ForChain", mock.Anything, sepoliaRelay).Return(f.relay, nil)
		f.relay.On("SafesByOwner", mock.Anything, signerAddress).Return([]common.Address{safe1}, nil)
		f.connector.On("Connect", mock.Anything, mock.MatchedBy(func(p usecase.ConnectParams) bool {
			return p.RPCURL == "http://localhost:8545"
		})).Return(nil, domain.ErrChainIDMismatch)

		params := f.params()
		params.RPCURL = "http://localhost:8545"
		_, err := f.uc.Run(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
		f.relay.AssertNotCalled(t, "NextNonce", mock.Anything, mock.Anything)
	})

	t.Run("relay rejection propagates", func(t *testing.T) {
		f := newProposeFixture(t)
		f.expectSigning([]common.Address{safe1})
		rejection := &domain.RelayError{Method: "POST", StatusCode: 422, Body: `{"nonce":["invalid"]}`}
		f.relay.On("ProposeTransaction", mock.Anything, mock.Anything).Return(rejection)

		_, err := f.uc.Run(ctx, f.params())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRelayRequest)

		var relayErr *domain.RelayError
		require.True(t, errors.As(err, &relayErr))
		assert.Equal(t, 422, relayErr.StatusCode)
		assert.NotContains(t, f.out.String(), "Transaction proposed")
	})
}

func TestProposeTransactionNoSafe(t *testing.T) {
	f := newProposeFixture(t)
	f.factory.On("ServiceConfig", uint64(11155111)).Return(sepoliaRelay, true)
	f.factory.On("ForChain", mock.Anything, sepoliaRelay).Return(f.relay, nil)
	f.relay.On("SafesByOwner", mock.Anything, signerAddress).Return([]common.Address{}, nil)

	_, err := f.uc.Run(context.Background(), f.params())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoOwnedSafe)

	f.connector.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
	f.relay.AssertNotCalled(t, "NextNonce", mock.Anything, mock.Anything)
	f.relay.AssertNotCalled(t, "ProposeTransaction", mock.Anything, mock.Anything)
	assert.Empty(t, f.out.String())
}

func TestProposeTransactionMissingArguments(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(p *usecase.ProposeTransactionParams)
		wantFlag string
		wantMsg  string
	}{
		{"network", func(p *usecase.ProposeTransactionParams) { p.Network = "" }, "network", "Network required"},
		{"private key", func(p *usecase.ProposeTransactionParams) { p.PrivateKey = "" }, "privateKey", "Private key required"},
		{"to", func(p *usecase.ProposeTransactionParams) { p.To = "" }, "to", "To address required"},
		{"calldata", func(p *usecase.ProposeTransactionParams) { p.Calldata = "" }, "calldata", "Calldata required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProposeFixture(t)
			params := f.params()
			tt.modify(&params)

			_, err := f.uc.Run(context.Background(), params)
			require.Error(t, err)

			var missing *domain.MissingArgumentError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantFlag, missing.Flag)
			assert.Equal(t, tt.wantMsg, err.Error())

			f.factory.AssertNotCalled(t, "ServiceConfig", mock.Anything)
			f.factory.AssertNotCalled(t, "ForChain", mock.Anything, mock.Anything)
			assert.Empty(t, f.progress.events)
		})
	}
}

func TestProposeTransactionInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *usecase.ProposeTransactionParams)
		wantErr error
	}{
		{
			name:    "unknown network",
			modify:  func(p *usecase.ProposeTransactionParams) { p.Network = "notachain" },
			wantErr: domain.ErrNetworkNotFound,
		},
		{
			name:    "malformed private key",
			modify:  func(p *usecase.ProposeTransactionParams) { p.PrivateKey = "1234" },
			wantErr: domain.ErrInvalidPrivateKey,
		},
		{
			name:    "bad recipient",
			modify:  func(p *usecase.ProposeTransactionParams) { p.To = "0x1234" },
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "calldata not hex",
			modify:  func(p *usecase.ProposeTransactionParams) { p.Calldata = "0xzz" },
			wantErr: domain.ErrInvalidCalldata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProposeFixture(t)
			params := f.params()
			tt.modify(&params)

			_, err := f.uc.Run(context.Background(), params)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			f.factory.AssertNotCalled(t, "ForChain", mock.Anything, mock.Anything)
		})
	}
}

func TestProposeTransactionUnknownNetworkMessage(t *testing.T) {
	f := newProposeFixture(t)
	params := f.params()
	params.Network = "sepola"

	_, err := f.uc.Run(context.Background(), params)
	require.Error(t, err)

	var unknown *domain.UnknownNetworkError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "sepola", unknown.Name)
	assert.Contains(t, unknown.Suggestions, "sepolia")
	assert.Contains(t, err.Error(), "unknown network: sepola")
}

func TestProposeTransactionRelaySupport(t *testing.T) {
	t.Run("chain without transaction service", func(t *testing.T) {
		f := newProposeFixture(t)
		f.factory.On("ServiceConfig", uint64(17000)).Return(domain.RelayServiceConfig{ChainID: 17000}, false)

		params := f.params()
		params.Network = "holesky"
		_, err := f.uc.Run(context.Background(), params)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedRelayChain)
		f.factory.AssertNotCalled(t, "ForChain", mock.Anything, mock.Anything)
	})

	t.Run("service url override", func(t *testing.T) {
		f := newProposeFixture(t)
		override := domain.RelayServiceConfig{ChainID: 17000, ServiceURL: "http://localhost:8000/api"}
		f.factory.On("ServiceConfig", uint64(17000)).Return(domain.RelayServiceConfig{ChainID: 17000}, false)
		f.factory.On("ForChain", mock.Anything, override).Return(nil, errors.New("stop"))

		params := f.params()
		params.Network = "holesky"
		params.TxServiceURL = override.ServiceURL
		_, err := f.uc.Run(context.Background(), params)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stop")
		f.factory.AssertExpectations(t)
	})
}
