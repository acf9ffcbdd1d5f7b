// Package events builds and signs the Nostr protocol events the satsback
// pipeline emits towards the ledger module.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nbd-wtf/go-nostr"
)

const (
	// KindInternalTransactionStart identifies an internal-transaction-start
	// message on the ledger.
	KindInternalTransactionStart = 1112

	tagInternalTransactionStart = "internal-transaction-start"
	tagSatsback                 = "satsback"
)

// Content is the serialized payload of a satsback event: the payout in
// millisatoshis plus the memo shown to the user.
type Content struct {
	Tokens Tokens `json:"tokens"`
	Memo   string `json:"memo"`
}

// Tokens holds the payout amounts per settlement token.
type Tokens struct {
	BTC int64 `json:"BTC"`
}

// BuildParams carries everything needed to assemble an unsigned
// internal-transaction-start event.
type BuildParams struct {
	// LedgerPubkey is the public key of the ledger that settles the
	// transaction.
	LedgerPubkey string
	// ReceiverPubkey is the public key receiving the satsback.
	ReceiverPubkey string
	// TransactionRef is the id of the originating payment event.
	TransactionRef string
	// EncryptedMetadata is the NIP-04 payload carrying sender/receiver
	// aliases.
	EncryptedMetadata string
	// AmountMsats is the satsback payout in millisatoshis.
	AmountMsats int64
	// Memo is the human-readable explanation of the payout.
	Memo string
}

// BuildInternalTransactionStart assembles the unsigned satsback event. Tag
// order is part of the ledger protocol and must not change. The timestamp is
// skewed one second forward so the event never shares a second with the
// payment that triggered it.
func BuildInternalTransactionStart(params BuildParams, now time.Time) (*nostr.Event, error) {
	content, err := json.Marshal(Content{
		Tokens: Tokens{BTC: params.AmountMsats},
		Memo:   params.Memo,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal event content: %w", err)
	}

	return &nostr.Event{
		Kind:      KindInternalTransactionStart,
		CreatedAt: nostr.Timestamp(now.Unix() + 1),
		Tags: nostr.Tags{
			nostr.Tag{"p", params.LedgerPubkey},
			nostr.Tag{"p", params.ReceiverPubkey},
			nostr.Tag{"t", tagInternalTransactionStart},
			nostr.Tag{"t", tagSatsback},
			nostr.Tag{"e", params.TransactionRef},
			nostr.Tag{"metadata", "true", "nip04", params.EncryptedMetadata},
		},
		Content: string(content),
	}, nil
}
