package services

// Whitelist is the authorization set for satsback payouts: a general set of
// allowed public keys plus a disjoint set of volunteer public keys. Membership
// in either set is required before any other work happens.
type Whitelist struct {
	general    map[string]struct{}
	volunteers map[string]struct{}
}

// NewWhitelist builds a whitelist from the two configured key lists.
func NewWhitelist(general, volunteers []string) *Whitelist {
	w := &Whitelist{
		general:    make(map[string]struct{}, len(general)),
		volunteers: make(map[string]struct{}, len(volunteers)),
	}
	for _, pubkey := range general {
		w.general[pubkey] = struct{}{}
	}
	for _, pubkey := range volunteers {
		w.volunteers[pubkey] = struct{}{}
	}
	return w
}

// Allowed reports whether the public key may receive satsback. Matching is
// exact and case-sensitive.
func (w *Whitelist) Allowed(pubkey string) bool {
	if _, ok := w.general[pubkey]; ok {
		return true
	}
	_, ok := w.volunteers[pubkey]
	return ok
}
