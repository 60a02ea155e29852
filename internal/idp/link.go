package idp

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
)

// LinkState rides through the provider's authorize redirect so the
// callback can tell which principal initiated the linking.
type LinkState struct {
	UserID string `json:"user_id"`
	Next   string `json:"next"`
}

func (s *LinkState) String() string {
	return fmt.Sprintf("LinkState(user=%s, next=%s)", s.UserID, s.Next)
}

// Serialize exists because Go calls MarshalText for structs if it's defined.
func (s *LinkState) Serialize() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshalling json: %w", err)
	}
	buf := make([]byte, base64.URLEncoding.EncodedLen(len(raw)))
	base64.URLEncoding.Encode(buf, raw)
	return string(buf), nil
}

func LinkStateFromString(s string) (*LinkState, error) {
	decoded, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}

	var state LinkState
	if err := json.Unmarshal(decoded, &state); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}

	return &state, nil
}

// LinkIdentityURL builds the provider's authorize URL that attaches a
// GitHub identity to the given principal. The provider runs the actual
// linking protocol; callers just redirect the browser here.
func (c *Client) LinkIdentityURL(userID, redirectTo string) (string, error) {
	base, err := url.Parse(c.client.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}

	state, err := (&LinkState{
		UserID: userID,
		Next:   redirectTo,
	}).Serialize()
	if err != nil {
		return "", fmt.Errorf("marshalling state: %w", err)
	}

	authorizeURL := url.URL{
		Scheme: base.Scheme,
		Host:   base.Host,
		Path:   base.Path + "/authorize",
	}

	query := url.Values{}
	query.Set("provider", "github")
	query.Set("scopes", "read:user user:email")
	query.Set("redirect_to", redirectTo)
	query.Set("state", state)

	authorizeURL.RawQuery = query.Encode()

	return authorizeURL.String(), nil
}
