package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default base URL for the LaWallet federation API. Overridable through
// LAWALLET_API_URL for staging environments.
const defaultLaWalletAPIURL = "https://lawallet.ar"

// Config holds all process-wide configuration for the satsback API.
// Whitelists are loaded here instead of being compiled in so they can be
// rotated without a redeploy.
type Config struct {
	// DefaultRate is the satsback rate applied to every whitelisted user.
	DefaultRate float64
	// VolunteerRate is the satsback rate applied while a volunteer still
	// has voucher balance left.
	VolunteerRate float64

	// Whitelist is the set of public keys allowed to receive satsback.
	Whitelist []string
	// VolunteerWhitelist is the set of volunteer public keys. Disjoint
	// from Whitelist.
	VolunteerWhitelist []string

	// NostrPrivateKey is the hex-encoded private key used to sign and
	// encrypt outgoing events.
	NostrPrivateKey string
	// LedgerPublicKey is the public key of the ledger module that settles
	// internal transactions.
	LedgerPublicKey string

	LaWalletAPIURL string
	DatabaseURL    string
}

// Load reads the configuration from the process environment. Rates are
// required and must be decimal fractions in (0, 1]; everything the signing
// path needs is required as well.
func Load() (*Config, error) {
	defaultRate, err := loadRate("SATSBACK_DEFAULT")
	if err != nil {
		return nil, err
	}

	volunteerRate, err := loadRate("SATSBACK_VOLUNTEERS")
	if err != nil {
		return nil, err
	}

	privateKey := os.Getenv("NOSTR_PRIVATE_KEY")
	if privateKey == "" {
		return nil, fmt.Errorf("NOSTR_PRIVATE_KEY environment variable is required")
	}

	ledgerPubkey := os.Getenv("LEDGER_PUBLIC_KEY")
	if ledgerPubkey == "" {
		return nil, fmt.Errorf("LEDGER_PUBLIC_KEY environment variable is required")
	}

	baseURL := os.Getenv("LAWALLET_API_URL")
	if baseURL == "" {
		baseURL = defaultLaWalletAPIURL
	}

	return &Config{
		DefaultRate:        defaultRate,
		VolunteerRate:      volunteerRate,
		Whitelist:          splitPubkeys(os.Getenv("SATSBACK_WHITELIST")),
		VolunteerWhitelist: splitPubkeys(os.Getenv("SATSBACK_VOLUNTEER_WHITELIST")),
		NostrPrivateKey:    privateKey,
		LedgerPublicKey:    ledgerPubkey,
		LaWalletAPIURL:     baseURL,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
	}, nil
}

// loadRate parses a rate environment variable. The process cannot compute a
// rebate without its rate policy, so any missing or invalid value is an error.
func loadRate(name string) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, fmt.Errorf("%s environment variable is required", name)
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a decimal fraction, got %q: %w", name, raw, err)
	}

	if rate <= 0 || rate > 1 {
		return 0, fmt.Errorf("%s must be in (0, 1], got %v", name, rate)
	}

	return rate, nil
}

// splitPubkeys parses a comma-separated list of public keys, trimming
// whitespace and dropping empty entries.
func splitPubkeys(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		key := strings.TrimSpace(part)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
