package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lacrypta/satsback-api/internal/client/lawallet"
	"github.com/lacrypta/satsback-api/internal/db"
	"github.com/lacrypta/satsback-api/internal/events"
	"github.com/lacrypta/satsback-api/internal/logger"
)

var (
	// ErrUnauthorized is returned for identities outside both whitelists.
	ErrUnauthorized = errors.New("user not allowed to receive satsback")
	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be a positive number of millisatoshis")
)

// VoucherStore is the persistence collaborator for volunteer vouchers.
type VoucherStore interface {
	// GetVolunteer returns the record for a public key, or nil when no
	// record exists.
	GetVolunteer(ctx context.Context, pubkey string) (*db.Volunteer, error)
	// DeductVoucher deducts up to maxMsats atomically and returns the
	// deducted amount and the remaining balance.
	DeductVoucher(ctx context.Context, pubkey string, maxMsats int64) (deducted int64, remaining int64, err error)
}

// AliasResolver resolves a public key to its federated alias.
type AliasResolver interface {
	ResolveAlias(ctx context.Context, pubkey string) (*lawallet.Alias, error)
}

// MetadataEncryptor encrypts the sender/receiver metadata for the receiver.
type MetadataEncryptor interface {
	Encrypt(senderPrivkey, receiverPubkey, plaintext string) (string, error)
}

// EventSigner derives keys and finalizes events.
type EventSigner interface {
	PublicKey(privkey string) (string, error)
	Finalize(event *nostr.Event, privkey string) error
}

// SatsbackService computes the satsback rebate for a LaCard payment and
// produces the signed ledger event announcing it.
type SatsbackService struct {
	whitelist     *Whitelist
	vouchers      VoucherStore
	resolver      AliasResolver
	encryptor     MetadataEncryptor
	signer        EventSigner
	defaultRate   float64
	volunteerRate float64
	logger        *zap.Logger
}

// NewSatsbackService creates a new satsback service.
func NewSatsbackService(
	whitelist *Whitelist,
	vouchers VoucherStore,
	resolver AliasResolver,
	encryptor MetadataEncryptor,
	signer EventSigner,
	defaultRate, volunteerRate float64,
) *SatsbackService {
	return &SatsbackService{
		whitelist:     whitelist,
		vouchers:      vouchers,
		resolver:      resolver,
		encryptor:     encryptor,
		signer:        signer,
		defaultRate:   defaultRate,
		volunteerRate: volunteerRate,
		logger:        logger.Log,
	}
}

// CreateSatsbackParams contains the inputs for one satsback computation.
type CreateSatsbackParams struct {
	// TransactionRef is the id of the payment event that triggered the
	// satsback.
	TransactionRef string
	// AmountMsats is the gross payment amount in millisatoshis.
	AmountMsats int64
	// UserPubkey is the paying identity receiving the satsback.
	UserPubkey string
	// LedgerPubkey is the ledger module that settles the transaction.
	LedgerPubkey string
	// PrivateKey is the hex private key signing the event.
	PrivateKey string
}

// metadataContent is the plaintext serialized into the encrypted metadata tag.
type metadataContent struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

// CreateSatsback runs the full pipeline: eligibility, rebate policy, alias
// resolution, metadata encryption and event signing. The voucher deduction is
// the only side effect; it happens before the network-bound steps and is not
// rolled back if one of them fails afterwards.
func (s *SatsbackService) CreateSatsback(ctx context.Context, params CreateSatsbackParams) (*nostr.Event, error) {
	if params.AmountMsats <= 0 {
		return nil, ErrInvalidAmount
	}

	if !s.whitelist.Allowed(params.UserPubkey) {
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, params.UserPubkey)
	}

	decision, err := s.decideRebate(ctx, params.UserPubkey, params.AmountMsats)
	if err != nil {
		return nil, err
	}

	// The voucher debit is not rolled back when a later step fails. Log
	// enough to reconcile it by hand.
	failAfterDebit := func(err error) error {
		if decision.Tier == TierVolunteer {
			s.logger.Warn("satsback failed after voucher debit",
				zap.String("user_pubkey", params.UserPubkey),
				zap.Int64("debited_msats", decision.AmountMsats),
				zap.Error(err))
		}
		return err
	}

	senderPubkey, err := s.signer.PublicKey(params.PrivateKey)
	if err != nil {
		return nil, failAfterDebit(fmt.Errorf("derive signer public key: %w", err))
	}

	// Sender and receiver lookups are independent; resolve both at once.
	var senderAlias, receiverAlias *lawallet.Alias
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		senderAlias, err = s.resolver.ResolveAlias(groupCtx, senderPubkey)
		return err
	})
	group.Go(func() error {
		var err error
		receiverAlias, err = s.resolver.ResolveAlias(groupCtx, params.UserPubkey)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, failAfterDebit(fmt.Errorf("resolve alias: %w", err))
	}

	metadata, err := json.Marshal(metadataContent{
		Sender:   senderAlias.Walias(),
		Receiver: receiverAlias.Walias(),
	})
	if err != nil {
		return nil, failAfterDebit(fmt.Errorf("marshal metadata: %w", err))
	}

	encryptedMetadata, err := s.encryptor.Encrypt(params.PrivateKey, params.UserPubkey, string(metadata))
	if err != nil {
		return nil, failAfterDebit(fmt.Errorf("encrypt metadata: %w", err))
	}

	event, err := events.BuildInternalTransactionStart(events.BuildParams{
		LedgerPubkey:      params.LedgerPubkey,
		ReceiverPubkey:    params.UserPubkey,
		TransactionRef:    params.TransactionRef,
		EncryptedMetadata: encryptedMetadata,
		AmountMsats:       decision.AmountMsats,
		Memo:              decision.Memo,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.signer.Finalize(event, params.PrivateKey); err != nil {
		return nil, failAfterDebit(fmt.Errorf("sign event: %w", err))
	}

	s.logger.Info("satsback event created",
		zap.String("event_id", event.ID),
		zap.String("user_pubkey", params.UserPubkey),
		zap.String("transaction_ref", params.TransactionRef),
		zap.Int64("payout_msats", decision.AmountMsats),
		zap.String("tier", string(decision.Tier)))

	return event, nil
}

// decideRebate selects the tier and computes the payout. The volunteer tier
// applies only while the voucher balance is strictly positive; an exhausted
// or absent record falls through to the default rate.
func (s *SatsbackService) decideRebate(ctx context.Context, pubkey string, amountMsats int64) (RebateDecision, error) {
	volunteer, err := s.vouchers.GetVolunteer(ctx, pubkey)
	if err != nil {
		return RebateDecision{}, fmt.Errorf("look up volunteer: %w", err)
	}

	if volunteer == nil || volunteer.VoucherMsats <= 0 {
		return defaultDecision(amountMsats, s.defaultRate), nil
	}

	payout := RoundedPayout(amountMsats, s.volunteerRate)
	if payout > volunteer.VoucherMsats {
		payout = volunteer.VoucherMsats
	}

	deducted, remaining, err := s.vouchers.DeductVoucher(ctx, pubkey, payout)
	if err != nil {
		return RebateDecision{}, fmt.Errorf("deduct voucher: %w", err)
	}

	return volunteerDecision(deducted, remaining, s.volunteerRate), nil
}
