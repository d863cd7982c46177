// Package identity talks to the external identity provider. The provider
// is an opaque oracle: given a bearer token it either returns the account
// it belongs to or nothing.
package identity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Identity is the resolved account behind a verified bearer token.
type Identity struct {
	ID        uuid.UUID
	Email     string
	Name      string
	AvatarURL string
}

// Verifier maps a raw bearer token to an Identity. A nil Identity with a
// nil error means the token is invalid, expired or revoked.
type Verifier interface {
	VerifyToken(token string) (*Identity, error)
}

// SupabaseVerifier verifies tokens against the Supabase auth endpoint.
// Results are never cached; every protected request pays the round trip.
type SupabaseVerifier struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewSupabaseVerifier(baseURL, serviceKey string) *SupabaseVerifier {
	return &SupabaseVerifier{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type supabaseUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		Name      string `json:"name"`
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

func (v *SupabaseVerifier) VerifyToken(token string) (*Identity, error) {
	req, err := http.NewRequest(http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.serviceKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, nil
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, nil
	}

	name := user.Metadata.Name
	if name == "" {
		name = user.Metadata.FullName
	}

	return &Identity{
		ID:        id,
		Email:     user.Email,
		Name:      name,
		AvatarURL: user.Metadata.AvatarURL,
	}, nil
}
