package services

import (
	"fmt"
	"strconv"
)

// RebateTier identifies which rate policy produced a payout.
type RebateTier string

const (
	// TierDefault is the flat satsback rate for whitelisted users.
	TierDefault RebateTier = "default"
	// TierVolunteer is the boosted rate paid from a volunteer's voucher.
	TierVolunteer RebateTier = "volunteer"
)

const (
	// msatsPerSat is the millisatoshi granularity of a payout.
	msatsPerSat = 1000
	// minPayoutMsats is the payout floor: never less than one whole sat.
	minPayoutMsats = 1000
)

const (
	defaultMemo   = "Satsback por pagar con LaCard."
	volunteerMemo = "Satsback por pagar con LaCard y ser voluntario."
	exhaustedMemo = "Terminaste tu voucher. Gracias por ser voluntario! <3"
)

// RebateDecision is the computed payout for one payment. It is never
// persisted; it only feeds the event that announces it.
type RebateDecision struct {
	AmountMsats int64
	Memo        string
	Tier        RebateTier
}

// RoundedPayout computes the payout for an amount at a given rate: the raw
// product is first lifted to the one-sat floor, then truncated down to whole
// sats. The floor applies before truncation, so a tiny amount*rate comes out
// as exactly 1000 msats.
func RoundedPayout(amountMsats int64, rate float64) int64 {
	raw := float64(amountMsats) * rate
	if raw < minPayoutMsats {
		raw = minPayoutMsats
	}
	return int64(raw/msatsPerSat) * msatsPerSat
}

// formatRate renders a rate as the percentage shown in memos, without
// trailing zeros (0.1 -> "10").
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', -1, 64)
}

// formatSats renders a millisatoshi balance in sats for memos, keeping any
// fractional remainder (9500 -> "9.5").
func formatSats(msats int64) string {
	return strconv.FormatFloat(float64(msats)/msatsPerSat, 'f', -1, 64)
}

// defaultDecision applies the flat rate with no voucher cap.
func defaultDecision(amountMsats int64, rate float64) RebateDecision {
	return RebateDecision{
		AmountMsats: RoundedPayout(amountMsats, rate),
		Memo:        fmt.Sprintf("%s (%s%% OFF)", defaultMemo, formatRate(rate)),
		Tier:        TierDefault,
	}
}

// volunteerDecision builds the decision for a voucher-funded payout that has
// already been deducted. An exhausted voucher gets the thank-you memo.
func volunteerDecision(deductedMsats, remainingMsats int64, rate float64) RebateDecision {
	memo := exhaustedMemo
	if remainingMsats > 0 {
		memo = fmt.Sprintf("%s (%s%% OFF). Te quedan %s sats en tu voucher.",
			volunteerMemo, formatRate(rate), formatSats(remainingMsats))
	}
	return RebateDecision{
		AmountMsats: deductedMsats,
		Memo:        memo,
		Tier:        TierVolunteer,
	}
}
