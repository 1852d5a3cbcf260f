package usecase_test

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// MockRelayFactory is a mock implementation of RelayServiceFactory
type MockRelayFactory struct {
	mock.Mock
}

func (m *MockRelayFactory) ServiceConfig(chainID uint64) (domain.RelayServiceConfig, bool) {
	args := m.Called(chainID)
	return args.Get(0).(domain.RelayServiceConfig), args.Bool(1)
}

func (m *MockRelayFactory) ForChain(ctx context.Context, cfg domain.RelayServiceConfig) (usecase.RelayService, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.RelayService), args.Error(1)
}

// MockRelay is a mock implementation of RelayService
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) SafesByOwner(ctx context.Context, owner common.Address) ([]common.Address, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockRelay) NextNonce(ctx context.Context, safeAddress common.Address) (uint64, error) {
	args := m.Called(ctx, safeAddress)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRelay) ProposeTransaction(ctx context.Context, proposal *domain.SignedProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockRelay) TransactionStatus(ctx context.Context, safeTxHash common.Hash) (*models.SafeTransactionStatus, error) {
	args := m.Called(ctx, safeTxHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SafeTransactionStatus), args.Error(1)
}

// MockConnector is a mock implementation of ProtocolConnector
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context, params usecase.ConnectParams) (usecase.ProtocolClient, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.ProtocolClient), args.Error(1)
}

// MockProtocolClient is a mock implementation of ProtocolClient
type MockProtocolClient struct {
	mock.Mock
}

func (m *MockProtocolClient) Address() common.Address {
	args := m.Called()
	return args.Get(0).(common.Address)
}

func (m *MockProtocolClient) CreateTransaction(ctx context.Context, requests []domain.TransactionRequest) (*models.SafeTransaction, error) {
	args := m.Called(ctx, requests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SafeTransaction), args.Error(1)
}

func (m *MockProtocolClient) TransactionHash(ctx context.Context, tx *models.SafeTransaction) (common.Hash, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockProtocolClient) SignHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProtocolClient) Close() {
	m.Called()
}

// MockProgressSink records progress events and notices
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}
