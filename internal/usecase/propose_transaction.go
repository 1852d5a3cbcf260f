package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/safe-propose/internal/domain"
)

// Progress stages reported while proposing
const (
	StageLookupSafes = "lookup-safes"
	StageConnect     = "connect"
	StageNonce       = "nonce"
	StageSign        = "sign"
	StagePropose     = "propose"
	StageCompleted   = "completed"
)

// ProposeTransactionParams contains parameters for proposing a transaction
type ProposeTransactionParams struct {
	Network    string
	PrivateKey string
	To         string
	Calldata   string

	// Safe selects one of the signer's Safes instead of the first one
	Safe string
	// RPCURL overrides the chain's default RPC endpoint
	RPCURL string
	// TxServiceURL overrides the built-in transaction service URL
	TxServiceURL string
	// DryRun signs the transaction without submitting it
	DryRun bool

	Reporter ProposalReporter
}

// Validate checks required arguments in flag order and reports the first missing one
func (p ProposeTransactionParams) Validate() error {
	switch {
	case p.Network == "":
		return &domain.MissingArgumentError{Flag: "network", Message: "Network required"}
	case p.PrivateKey == "":
		return &domain.MissingArgumentError{Flag: "privateKey", Message: "Private key required"}
	case p.To == "":
		return &domain.MissingArgumentError{Flag: "to", Message: "To address required"}
	case p.Calldata == "":
		return &domain.MissingArgumentError{Flag: "calldata", Message: "Calldata required"}
	}
	return nil
}

// ProposeTransactionResult contains the result of a proposal
type ProposeTransactionResult struct {
	Chain     *domain.ChainDescriptor
	Proposal  *domain.SignedProposal
	Submitted bool
}

// ProposeTransaction signs a single call for a Safe and proposes it to the transaction service
type ProposeTransaction struct {
	registry  ChainRegistry
	signers   SignerProvider
	relays    RelayServiceFactory
	connector ProtocolConnector
	selector  SafeSelector
	progress  ProgressSink
}

// NewProposeTransaction creates a new ProposeTransaction use case
func NewProposeTransaction(
	registry ChainRegistry,
	signers SignerProvider,
	relays RelayServiceFactory,
	connector ProtocolConnector,
	selector SafeSelector,
	progress ProgressSink,
) *ProposeTransaction {
	if progress == nil {
		progress = NopProgress{}
	}
	return &ProposeTransaction{
		registry:  registry,
		signers:   signers,
		relays:    relays,
		connector: connector,
		selector:  selector,
		progress:  progress,
	}
}

// Run executes the use case
func (uc *ProposeTransaction) Run(ctx context.Context, params ProposeTransactionParams) (*ProposeTransactionResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	reporter := params.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	chain, err := uc.registry.Lookup(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	signer, err := uc.signers.FromPrivateKey(params.PrivateKey)
	if err != nil {
		return nil, err
	}

	to, calldata, err := parseCall(params.To, params.Calldata)
	if err != nil {
		return nil, err
	}

	relayCfg, ok := uc.relays.ServiceConfig(chain.ID)
	if params.TxServiceURL != "" {
		relayCfg.ServiceURL = params.TxServiceURL
	} else if !ok {
		return nil, fmt.Errorf("%w: %s (chain ID %d)", domain.ErrUnsupportedRelayChain, chain.Name, chain.ID)
	}

	relay, err := uc.relays.ForChain(ctx, relayCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service client: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageLookupSafes,
		Message: fmt.Sprintf("Looking up Safes owned by %s", signer.Address().Hex()),
		Spinner: true,
	})
	safes, err := relay.SafesByOwner(ctx, signer.Address())
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to get safes for owner %s: %w", signer.Address().Hex(), err)
	}

	safeAddress, err := uc.chooseSafe(ctx, signer.Address(), safes, params.Safe)
	if err != nil {
		uc.stopProgress(ctx)
		return nil, err
	}

	rpcURL := params.RPCURL
	if rpcURL == "" {
		rpcURL = chain.DefaultRPCURL()
	}
	if rpcURL == "" {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("%w: %s", domain.ErrNoRPCURL, chain.Name)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageConnect,
		Message: fmt.Sprintf("Connecting to %s", chain.Name),
		Spinner: true,
	})
	client, err := uc.connector.Connect(ctx, ConnectParams{
		Chain:       chain,
		RPCURL:      rpcURL,
		SafeAddress: safeAddress,
		Signer:      signer,
	})
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to initialize safe %s: %w", safeAddress.Hex(), err)
	}
	defer client.Close()

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageNonce,
		Message: "Fetching next nonce",
		Spinner: true,
	})
	nonce, err := relay.NextNonce(ctx, safeAddress)
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to get next nonce for %s: %w", safeAddress.Hex(), err)
	}
	uc.progress.Info(fmt.Sprintf("Using nonce %d", nonce))

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSign,
		Message: "Signing transaction",
		Spinner: true,
	})
	request := domain.TransactionRequest{
		To:        to.Hex(),
		Value:     "0",
		Data:      calldata,
		Operation: domain.OperationCall,
		Nonce:     nonce,
	}

	tx, err := client.CreateTransaction(ctx, []domain.TransactionRequest{request})
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	safeTxHash, err := client.TransactionHash(ctx, tx)
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to hash transaction: %w", err)
	}

	signature, err := client.SignHash(ctx, safeTxHash)
	if err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to sign transaction hash: %w", err)
	}

	proposal := &domain.SignedProposal{
		SafeAddress:     client.Address().Hex(),
		Transaction:     tx,
		SafeTxHash:      safeTxHash.Hex(),
		SenderAddress:   signer.Address().Hex(),
		SenderSignature: hexutil.Encode(signature),
	}

	uc.stopProgress(ctx)
	reporter.ProposalSigned(ctx, params.Network, proposal)

	result := &ProposeTransactionResult{
		Chain:    chain,
		Proposal: proposal,
	}
	if params.DryRun {
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StagePropose,
		Message: "Proposing transaction",
		Spinner: true,
	})
	if err := relay.ProposeTransaction(ctx, proposal); err != nil {
		uc.stopProgress(ctx)
		return nil, fmt.Errorf("failed to propose transaction: %w", err)
	}
	uc.stopProgress(ctx)

	result.Submitted = true
	reporter.ProposalSubmitted(ctx, proposal)

	return result, nil
}

// chooseSafe picks the Safe to propose to from the signer's Safes
func (uc *ProposeTransaction) chooseSafe(ctx context.Context, owner common.Address, safes []common.Address, requested string) (common.Address, error) {
	if len(safes) == 0 {
		return common.Address{}, fmt.Errorf("%w: %s owns no Safe on this chain", domain.ErrNoOwnedSafe, owner.Hex())
	}

	if requested != "" {
		if !common.IsHexAddress(requested) {
			return common.Address{}, fmt.Errorf("%w: safe %q", domain.ErrInvalidAddress, requested)
		}
		want := common.HexToAddress(requested)
		for _, s := range safes {
			if s == want {
				return s, nil
			}
		}
		return common.Address{}, fmt.Errorf("%w: %s is not an owner of %s", domain.ErrSafeNotOwned, owner.Hex(), want.Hex())
	}

	if len(safes) > 1 {
		uc.progress.Info(fmt.Sprintf("%s owns %d Safes, pick one with --safe or --interactive", owner.Hex(), len(safes)))
	}

	if len(safes) == 1 || uc.selector == nil {
		return safes[0], nil
	}

	uc.stopProgress(ctx)
	return uc.selector.SelectSafe(ctx, safes)
}

func (uc *ProposeTransaction) stopProgress(ctx context.Context) {
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
}

// parseCall validates the destination address and hex calldata
func parseCall(to, calldata string) (common.Address, string, error) {
	if !common.IsHexAddress(to) {
		return common.Address{}, "", fmt.Errorf("%w: to %q", domain.ErrInvalidAddress, to)
	}

	if !strings.HasPrefix(calldata, "0x") && !strings.HasPrefix(calldata, "0X") {
		calldata = "0x" + calldata
	}
	data, err := hexutil.Decode(calldata)
	if err != nil {
		return common.Address{}, "", fmt.Errorf("%w: %v", domain.ErrInvalidCalldata, err)
	}

	return common.HexToAddress(to), hexutil.Encode(data), nil
}
