package events

import (
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip04"
	"github.com/pkg/errors"
)

// NIP04Encryptor encrypts metadata payloads for a receiver using the NIP-04
// shared-secret scheme. Output is not deterministic: the scheme uses a random
// IV per message.
type NIP04Encryptor struct{}

// Encrypt derives the shared secret between the sender's private key and the
// receiver's public key and encrypts the plaintext with it.
func (NIP04Encryptor) Encrypt(senderPrivkey, receiverPubkey, plaintext string) (string, error) {
	shared, err := nip04.ComputeSharedSecret(receiverPubkey, senderPrivkey)
	if err != nil {
		return "", errors.Wrap(err, "failed to compute shared secret")
	}

	ciphertext, err := nip04.Encrypt(plaintext, shared)
	if err != nil {
		return "", errors.Wrap(err, "failed to encrypt metadata")
	}

	return ciphertext, nil
}

// Decrypt reverses Encrypt given the receiver's private key and the sender's
// public key.
func (NIP04Encryptor) Decrypt(receiverPrivkey, senderPubkey, ciphertext string) (string, error) {
	shared, err := nip04.ComputeSharedSecret(senderPubkey, receiverPrivkey)
	if err != nil {
		return "", errors.Wrap(err, "failed to compute shared secret")
	}

	plaintext, err := nip04.Decrypt(ciphertext, shared)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt metadata")
	}

	return plaintext, nil
}

// SchnorrSigner finalizes events with a Schnorr signature over the canonical
// event serialization. Deterministic given identical timestamp and inputs.
type SchnorrSigner struct{}

// PublicKey derives the hex public key for a hex private key.
func (SchnorrSigner) PublicKey(privkey string) (string, error) {
	pubkey, err := nostr.GetPublicKey(privkey)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive public key")
	}
	return pubkey, nil
}

// Finalize computes the event id and signature in place, setting PubKey, ID
// and Sig on the event.
func (SchnorrSigner) Finalize(event *nostr.Event, privkey string) error {
	if err := event.Sign(privkey); err != nil {
		return errors.Wrap(err, "failed to sign event")
	}
	return nil
}

// IsValidPublicKey reports whether s looks like a hex-encoded Nostr public
// key: exactly 64 lowercase hex characters.
func IsValidPublicKey(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
