package models

import "time"

// Claim links one user to one perk they have redeemed. At most one claim
// exists per (user, perk) pair; the claims table enforces this with a
// unique index.
type Claim struct {
	ID        string    `json:"id"`
	UserID    string    `json:"beneficiary_id"`
	PerkID    string    `json:"perk_id"`
	ClaimedAt time.Time `json:"claim_timestamp"`
}

// ClaimWithPerk is a claim with its referenced perk inlined, as returned by
// the account-status listing.
type ClaimWithPerk struct {
	Claim
	Perk Perk `json:"perk"`
}
