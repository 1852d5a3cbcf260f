package safe

import (
	"strconv"

	"github.com/trebuchet-org/safe-propose/internal/domain"
)

// TransactionServiceURLs contains the Safe Transaction Service URLs keyed by chain ID
var TransactionServiceURLs = map[string]string{
	"1":          "https://safe-transaction-mainnet.safe.global/api",
	"10":         "https://safe-transaction-optimism.safe.global/api",
	"56":         "https://safe-transaction-bsc.safe.global/api",
	"100":        "https://safe-transaction-gnosis-chain.safe.global/api",
	"137":        "https://safe-transaction-polygon.safe.global/api",
	"324":        "https://safe-transaction-zksync.safe.global/api",
	"1101":       "https://safe-transaction-zkevm.safe.global/api",
	"8453":       "https://safe-transaction-base.safe.global/api",
	"42161":      "https://safe-transaction-arbitrum.safe.global/api",
	"42220":      "https://safe-transaction-celo.safe.global/api",
	"43114":      "https://safe-transaction-avalanche.safe.global/api",
	"84532":      "https://safe-transaction-base-sepolia.safe.global/api",
	"11155111":   "https://safe-transaction-sepolia.safe.global/api",
	"1313161554": "https://safe-transaction-aurora.safe.global/api",
	"288":        "https://safe-transaction.mainnet.boba.network/api",
	"250":        "https://safe-txservice.fantom.network/api",
	"1284":       "https://transaction.multisig.moonbeam.network/api",
	"1285":       "https://transaction.moonriver.multisig.moonbeam.network/api",
}

// RelayConfigFor builds the service configuration for a chain.
// ServiceURL is empty and ok is false when the chain has no entry; no fallback is applied.
func RelayConfigFor(chainID uint64) (cfg domain.RelayServiceConfig, ok bool) {
	url, ok := TransactionServiceURLs[strconv.FormatUint(chainID, 10)]
	return domain.RelayServiceConfig{
		ChainID:    chainID,
		ServiceURL: url,
	}, ok
}
