package protocol

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/trebuchet-org/safe-propose/internal/domain/models"
)

var (
	// Safe 1.3.0 added chainId to the EIP-712 domain
	chainIDDomainVersion = semver.MustParse("1.3.0")
	// Safe 1.0.0 renamed dataGas to baseGas
	baseGasVersion = semver.MustParse("1.0.0")
)

// SafeTxTypedData builds the EIP-712 typed data the Safe contract hashes for tx
func SafeTxTypedData(chainID *big.Int, safeAddress common.Address, version *semver.Version, tx *models.SafeTransaction) apitypes.TypedData {
	domainTypes := []apitypes.Type{
		{Name: "verifyingContract", Type: "address"},
	}
	domain := apitypes.TypedDataDomain{
		VerifyingContract: safeAddress.Hex(),
	}
	if !version.LessThan(chainIDDomainVersion) {
		domainTypes = []apitypes.Type{
			{Name: "chainId", Type: "uint256"},
			{Name: "verifyingContract", Type: "address"},
		}
		domain.ChainId = (*math.HexOrDecimal256)(new(big.Int).Set(chainID))
	}

	gasField := "baseGas"
	if version.LessThan(baseGasVersion) {
		gasField = "dataGas"
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": domainTypes,
			"SafeTx": []apitypes.Type{
				{Name: "to", Type: "address"},
				{Name: "value", Type: "uint256"},
				{Name: "data", Type: "bytes"},
				{Name: "operation", Type: "uint8"},
				{Name: "safeTxGas", Type: "uint256"},
				{Name: gasField, Type: "uint256"},
				{Name: "gasPrice", Type: "uint256"},
				{Name: "gasToken", Type: "address"},
				{Name: "refundReceiver", Type: "address"},
				{Name: "nonce", Type: "uint256"},
			},
		},
		PrimaryType: "SafeTx",
		Domain:      domain,
		Message: apitypes.TypedDataMessage{
			"to":             tx.To,
			"value":          tx.Value,
			"data":           tx.Data,
			"operation":      strconv.FormatUint(uint64(tx.Operation), 10),
			"safeTxGas":      tx.SafeTxGas,
			gasField:         tx.BaseGas,
			"gasPrice":       tx.GasPrice,
			"gasToken":       tx.GasToken,
			"refundReceiver": tx.RefundReceiver,
			"nonce":          strconv.FormatUint(tx.Nonce, 10),
		},
	}
}

// SafeTxHash computes the hash the Safe contract's getTransactionHash returns for tx
func SafeTxHash(chainID *big.Int, safeAddress common.Address, version *semver.Version, tx *models.SafeTransaction) (common.Hash, error) {
	hash, _, err := apitypes.TypedDataAndHash(SafeTxTypedData(chainID, safeAddress, version, tx))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash safe transaction: %w", err)
	}
	return common.BytesToHash(hash), nil
}
