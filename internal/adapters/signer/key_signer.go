package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/safe-propose/internal/domain"
	"github.com/trebuchet-org/safe-propose/internal/usecase"
)

// KeySigner signs with an in-memory secp256k1 private key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// ParsePrivateKey parses a hex encoded private key, with or without 0x prefix
func ParsePrivateKey(raw string) (*KeySigner, error) {
	hexKey := strings.TrimSpace(raw)
	if strings.HasPrefix(hexKey, "0x") || strings.HasPrefix(hexKey, "0X") {
		hexKey = hexKey[2:]
	}

	if len(hexKey) != 64 {
		return nil, fmt.Errorf("%w: expected 64 hex characters, got %d", domain.ErrInvalidPrivateKey, len(hexKey))
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}

	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the account derived from the key
func (s *KeySigner) Address() common.Address {
	return s.address
}

// SignHash signs a 32 byte digest, returning [R || S || V] with V in {0, 1}
func (s *KeySigner) SignHash(hash []byte) ([]byte, error) {
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign hash: %w", err)
	}
	return sig, nil
}

// SignMessage signs message as an EIP-191 personal message, returning V in {27, 28}
func (s *KeySigner) SignMessage(message []byte) ([]byte, error) {
	sig, err := s.SignHash(accounts.TextHash(message))
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// Provider derives key signers
type Provider struct{}

// NewProvider creates a signer provider
func NewProvider() *Provider {
	return &Provider{}
}

// FromPrivateKey derives a signer from a raw hex private key
func (p *Provider) FromPrivateKey(privateKey string) (usecase.Signer, error) {
	return ParsePrivateKey(privateKey)
}

// Ensure the signer implements the interfaces
var (
	_ usecase.Signer         = (*KeySigner)(nil)
	_ usecase.SignerProvider = (*Provider)(nil)
)
