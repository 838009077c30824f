package models

import "time"

// Perk is a third-party offer available for claiming. RedemptionInstruction
// is opaque to the system; it may contain a code or a URL. IsLocked is
// informational for clients — the claim gate is role-based, not per-perk.
type Perk struct {
	ID                    string    `json:"id"`
	Headline              string    `json:"offer_headline"`
	Provider              string    `json:"provider_identity"`
	BenefitValue          string    `json:"benefit_value"`
	RedemptionInstruction string    `json:"redemption_instruction"`
	IsLocked              bool      `json:"is_locked_asset"`
	ImageURL              string    `json:"visual_asset_url"`
	CreatedAt             time.Time `json:"created_at"`
}
