// Package client is a small REST client for the marketplace API. It caches
// the bearer token and profile from a successful login in memory and attaches
// the token to every subsequent call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/foundergrid/perkmarket/internal/common"
)

// Profile is the identity summary returned by a successful login.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Opportunity mirrors a catalog entry on the wire.
type Opportunity struct {
	ID                    string    `json:"id"`
	Headline              string    `json:"offer_headline"`
	Provider              string    `json:"provider_identity"`
	BenefitValue          string    `json:"benefit_value"`
	RedemptionInstruction string    `json:"redemption_instruction"`
	IsLocked              bool      `json:"is_locked_asset"`
	ImageURL              string    `json:"visual_asset_url"`
	CreatedAt             time.Time `json:"created_at"`
}

// ClaimRecord is one entry of the account's claim history, with the perk
// inlined.
type ClaimRecord struct {
	ID        string      `json:"id"`
	PerkID    string      `json:"perk_id"`
	ClaimedAt time.Time   `json:"claim_timestamp"`
	Perk      Opportunity `json:"perk"`
}

// Session holds the cached credential from the last successful login.
type Session struct {
	Token   string
	Profile Profile
}

type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func NewRESTClient(baseURL string) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SessionActive reports whether a login has succeeded on this client.
func (c *RESTClient) SessionActive() bool {
	return c.session != nil
}

// Session returns the cached session, or nil before login.
func (c *RESTClient) Session() *Session {
	return c.session
}

type apiFault struct {
	Status string `json:"status"`
	Note   string `json:"note"`
	Signal string `json:"signal"`
	Reason string `json:"reason"`
}

func (c *RESTClient) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unexpected response: %w", err)
		}
	}
	return nil
}

// mapError folds API failure responses into the shared sentinel errors where
// one applies, so callers can use errors.Is.
func (c *RESTClient) mapError(code int, raw []byte) error {
	var fault apiFault
	_ = json.Unmarshal(raw, &fault)

	note := fault.Note
	if note == "" {
		note = fault.Reason
	}

	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, note)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, note)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, note)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrorContactTaken, note)
	case http.StatusBadRequest:
		if fault.Status == "DUPLICATE" {
			return fmt.Errorf("%w: %s", common.ErrorAlreadyClaimed, note)
		}
		return fmt.Errorf("request rejected: %s", note)
	default:
		return fmt.Errorf("%w: server returned %d", common.ErrorInternal, code)
	}
}

// Register creates a new identity. It does not log in.
func (c *RESTClient) Register(ctx context.Context, name, email, secret string) error {
	payload := map[string]string{
		"full_name":     name,
		"email_address": email,
		"secret_code":   secret,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/initiate", payload, nil)
}

// Login authenticates and caches the returned token and profile.
func (c *RESTClient) Login(ctx context.Context, email, secret string) (*Profile, error) {
	payload := map[string]string{
		"email_address": email,
		"secret_code":   secret,
	}

	var resp struct {
		Token   string  `json:"token"`
		Profile Profile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/identify", payload, &resp); err != nil {
		return nil, err
	}

	c.session = &Session{Token: resp.Token, Profile: resp.Profile}
	return &resp.Profile, nil
}

// Opportunities lists the perk catalog.
func (c *RESTClient) Opportunities(ctx context.Context) ([]Opportunity, error) {
	var resp struct {
		Payload []Opportunity `json:"payload"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/market/opportunities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// Opportunity fetches a single perk by id.
func (c *RESTClient) Opportunity(ctx context.Context, id string) (*Opportunity, error) {
	var resp struct {
		Payload Opportunity `json:"payload"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/market/opportunities/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Payload, nil
}

// Claim secures a perk and returns its redemption details.
func (c *RESTClient) Claim(ctx context.Context, id string) (string, error) {
	var resp struct {
		Details string `json:"details"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/market/claim/"+id, nil, &resp); err != nil {
		return "", err
	}
	return resp.Details, nil
}

// AccountStatus lists the session user's claims, oldest first.
func (c *RESTClient) AccountStatus(ctx context.Context) ([]ClaimRecord, error) {
	var resp struct {
		Claims []ClaimRecord `json:"claims"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/account/status", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Claims, nil
}
