package app

import (
	"github.com/trebuchet-org/safe-propose/internal/config"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ProposeTransaction  *usecase.ProposeTransaction
	ResolveRPC          *usecase.ResolveRPC
	ListNetworks        *usecase.ListNetworks
	ShowSafeTransaction *usecase.ShowSafeTransaction
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	proposeTransaction *usecase.ProposeTransaction,
	resolveRPC *usecase.ResolveRPC,
	listNetworks *usecase.ListNetworks,
	showSafeTransaction *usecase.ShowSafeTransaction,
) (*App, error) {
	return &App{
		Config:              cfg,
		ProposeTransaction:  proposeTransaction,
		ResolveRPC:          resolveRPC,
		ListNetworks:        listNetworks,
		ShowSafeTransaction: showSafeTransaction,
	}, nil
}
