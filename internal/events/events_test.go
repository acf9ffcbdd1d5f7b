package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lacrypta/satsback-api/internal/events"
)

func TestBuildInternalTransactionStart(t *testing.T) {
	now := time.Unix(1700000000, 0)

	event, err := events.BuildInternalTransactionStart(events.BuildParams{
		LedgerPubkey:      "ledger-pubkey",
		ReceiverPubkey:    "receiver-pubkey",
		TransactionRef:    "origin-event-id",
		EncryptedMetadata: "ciphertext?iv=abc",
		AmountMsats:       2000,
		Memo:              "Satsback por pagar con LaCard. (2% OFF)",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, events.KindInternalTransactionStart, event.Kind)
	// One second forward of the observed clock
	assert.Equal(t, nostr.Timestamp(1700000001), event.CreatedAt)

	expectedTags := nostr.Tags{
		nostr.Tag{"p", "ledger-pubkey"},
		nostr.Tag{"p", "receiver-pubkey"},
		nostr.Tag{"t", "internal-transaction-start"},
		nostr.Tag{"t", "satsback"},
		nostr.Tag{"e", "origin-event-id"},
		nostr.Tag{"metadata", "true", "nip04", "ciphertext?iv=abc"},
	}
	assert.Equal(t, expectedTags, event.Tags)

	var content events.Content
	require.NoError(t, json.Unmarshal([]byte(event.Content), &content))
	assert.Equal(t, int64(2000), content.Tokens.BTC)
	assert.Equal(t, "Satsback por pagar con LaCard. (2% OFF)", content.Memo)

	// Unsigned until a signer finalizes it
	assert.Empty(t, event.ID)
	assert.Empty(t, event.Sig)
}

func TestSchnorrSignerFinalize(t *testing.T) {
	privkey := nostr.GeneratePrivateKey()
	signer := events.SchnorrSigner{}

	pubkey, err := signer.PublicKey(privkey)
	require.NoError(t, err)
	assert.Len(t, pubkey, 64)

	event, err := events.BuildInternalTransactionStart(events.BuildParams{
		LedgerPubkey:      pubkey,
		ReceiverPubkey:    pubkey,
		TransactionRef:    "origin-event-id",
		EncryptedMetadata: "cipher",
		AmountMsats:       1000,
		Memo:              "memo",
	}, time.Now())
	require.NoError(t, err)

	require.NoError(t, signer.Finalize(event, privkey))
	assert.Equal(t, pubkey, event.PubKey)
	assert.NotEmpty(t, event.ID)
	assert.NotEmpty(t, event.Sig)

	ok, err := event.CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNIP04EncryptorRoundTrip(t *testing.T) {
	senderPrivkey := nostr.GeneratePrivateKey()
	senderPubkey, err := nostr.GetPublicKey(senderPrivkey)
	require.NoError(t, err)

	receiverPrivkey := nostr.GeneratePrivateKey()
	receiverPubkey, err := nostr.GetPublicKey(receiverPrivkey)
	require.NoError(t, err)

	encryptor := events.NIP04Encryptor{}
	plaintext := `{"sender":"lacard@lawallet.ar","receiver":"pulpo@lawallet.ar"}`

	first, err := encryptor.Encrypt(senderPrivkey, receiverPubkey, plaintext)
	require.NoError(t, err)
	second, err := encryptor.Encrypt(senderPrivkey, receiverPubkey, plaintext)
	require.NoError(t, err)

	// The scheme uses a random IV, so two encryptions of the same input
	// must not match. Correctness is decryptability, not byte equality.
	assert.NotEqual(t, first, second)

	decrypted, err := encryptor.Decrypt(receiverPrivkey, senderPubkey, first)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestIsValidPublicKey(t *testing.T) {
	valid := nostr.GeneratePrivateKey()
	pubkey, err := nostr.GetPublicKey(valid)
	require.NoError(t, err)

	assert.True(t, events.IsValidPublicKey(pubkey))
	assert.True(t, events.IsValidPublicKey("9c38f29d508ffdcbe6571a7cf56c963a5805b5d5f41180b19273f840281b3d45"))

	assert.False(t, events.IsValidPublicKey(""))
	assert.False(t, events.IsValidPublicKey("abc123"))
	assert.False(t, events.IsValidPublicKey(pubkey+"00"))
	// Uppercase hex is rejected; identities are lowercase by convention
	assert.False(t, events.IsValidPublicKey("9C38F29D508FFDCBE6571A7CF56C963A5805B5D5F41180B19273F840281B3D45"))
	assert.False(t, events.IsValidPublicKey("zz38f29d508ffdcbe6571a7cf56c963a5805b5d5f41180b19273f840281b3d45"))
}
