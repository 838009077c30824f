package models

import "time"

// Platform roles. Registration currently assigns RoleFounder; RoleInitiate
// exists for accounts that have not passed vetting and RoleAdmin for
// operator accounts created out of band.
const (
	RoleInitiate = "initiate"
	RoleFounder  = "founder"
	RoleAdmin    = "admin"
)

// User is an identity record. AccessKey holds the bcrypt digest of the
// user's secret and is never serialized.
type User struct {
	ID             string    `json:"id"`
	AliasName      string    `json:"alias_name"`
	DigitalContact string    `json:"digital_contact"`
	AccessKey      string    `json:"-"`
	IsVetted       bool      `json:"is_vetted_founder"`
	Role           string    `json:"platform_role"`
	CreatedAt      time.Time `json:"created_at"`
}
