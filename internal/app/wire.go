//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/safe-propose/internal/adapters"
	"github.com/trebuchet-org/safe-propose/internal/config"
	"github.com/trebuchet-org/safe-propose/internal/logging"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewProposeTransaction,
		usecase.NewResolveRPC,
		usecase.NewListNetworks,
		usecase.NewShowSafeTransaction,

		// App
		NewApp,
	)
	return nil, nil
}
