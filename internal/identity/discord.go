package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leagueops/league-management/internal"
)

const defaultAPIBaseURL = "https://discord.com/api/v10"

// DiscordClient talks to the Discord OAuth2 / user API. It is both the
// identity resolver used by the authorization chain and the backend for the
// public authentication procedures (authorize URL, code exchange).
type DiscordClient struct {
	cfg        internal.DiscordConfig
	httpClient *http.Client
	baseURL    string
}

func NewDiscordClient(cfg internal.DiscordConfig) *DiscordClient {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DiscordClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// DiscordUser is the raw profile returned by the provider.
type DiscordUser struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Avatar        *string `json:"avatar,omitempty"`
	Discriminator string  `json:"discriminator"`
	PublicFlags   int     `json:"public_flags,omitempty"`
	Locale        string  `json:"locale,omitempty"`
	MFAEnabled    bool    `json:"mfa_enabled,omitempty"`
}

// Tokens is the result of an OAuth2 authorization-code exchange.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// AuthURL returns the provider authorize URL plus a freshly generated state
// value the browser must echo back on the callback.
func (c *DiscordClient) AuthURL() (authURL string, state string) {
	state = strings.ReplaceAll(uuid.NewString(), "-", "")

	q := url.Values{}
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "identify")
	q.Set("state", state)

	return c.baseURL + "/oauth2/authorize?" + q.Encode(), state
}

// ExchangeCode trades an authorization code for access/refresh tokens.
func (c *DiscordClient) ExchangeCode(ctx context.Context, code string) (Tokens, error) {
	if code == "" {
		return Tokens{}, fmt.Errorf("exchange code: empty code")
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("scope", "identify")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Tokens{}, fmt.Errorf("exchange code: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Tokens{}, fmt.Errorf("exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Tokens{}, fmt.Errorf("exchange code: provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tokens Tokens
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return Tokens{}, fmt.Errorf("exchange code: decode response: %w", err)
	}
	return tokens, nil
}

// GetUser fetches the profile behind a bearer token.
func (c *DiscordClient) GetUser(ctx context.Context, token string) (DiscordUser, error) {
	if token == "" {
		return DiscordUser{}, ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me", nil)
	if err != nil {
		return DiscordUser{}, fmt.Errorf("get user: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return DiscordUser{}, fmt.Errorf("get user: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return DiscordUser{}, fmt.Errorf("%w: provider rejected token: %s", ErrInvalidToken, strings.TrimSpace(string(body)))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return DiscordUser{}, fmt.Errorf("get user: provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user DiscordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return DiscordUser{}, fmt.Errorf("get user: decode response: %w", err)
	}
	if user.ID == "" {
		return DiscordUser{}, fmt.Errorf("%w: provider returned empty user id", ErrInvalidToken)
	}
	return user, nil
}

// Resolve implements Resolver on top of GetUser.
func (c *DiscordClient) Resolve(ctx context.Context, token string) (Identity, error) {
	user, err := c.GetUser(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ExternalID: user.ID, DisplayName: user.Username}, nil
}
