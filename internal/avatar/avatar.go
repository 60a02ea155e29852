// Package avatar resolves a participant's avatar URL. Priority: an explicit
// URL from the caller, then the GitHub profile picture, then a generated
// initials placeholder.
package avatar

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Colors the placeholder background can use, matching the onboarding
// palette.
var Colors = []string{
	"0062FF", // blue
	"10B981", // green
	"F59E0B", // amber
	"EF4444", // red
	"8B5CF6", // purple
	"EC4899", // pink
	"06B6D4", // cyan
	"84CC16", // lime
}

type Resolver struct {
	client *resty.Client
}

func NewResolver(githubAPIBaseURL string) *Resolver {
	return &Resolver{
		client: resty.New().SetBaseURL(githubAPIBaseURL),
	}
}

// Resolve picks the avatar URL for a new participant. The GitHub lookup is
// best-effort: any failure falls through to the generated placeholder.
func (r *Resolver) Resolve(ctx context.Context, explicitURL, githubUsername, displayName string) string {
	if explicitURL != "" {
		return explicitURL
	}

	if githubUsername != "" {
		if avatarURL := r.fetchGitHubAvatar(ctx, githubUsername); avatarURL != "" {
			return avatarURL
		}
	}

	return PlaceholderURL(displayName, Colors[rand.Intn(len(Colors))])
}

func (r *Resolver) fetchGitHubAvatar(ctx context.Context, login string) string {
	type githubUser struct {
		AvatarURL string `json:"avatar_url"`
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&githubUser{}).
		Get(fmt.Sprintf("/users/%s", login))
	if err != nil {
		logrus.Warnf("failed to fetch github profile for %s: %v", login, err)
		return ""
	}

	if resp.StatusCode() != http.StatusOK {
		logrus.Warnf("github profile lookup for %s returned %d", login, resp.StatusCode())
		return ""
	}

	return resp.Result().(*githubUser).AvatarURL
}

// PlaceholderURL builds a ui-avatars image keyed by the initials of the
// display name.
func PlaceholderURL(displayName, background string) string {
	return LabelURL(Initials(displayName), background)
}

// LabelURL builds a ui-avatars image showing the label verbatim.
func LabelURL(label, background string) string {
	query := url.Values{}
	query.Set("name", label)
	query.Set("background", background)
	query.Set("color", "fff")
	query.Set("size", "200")
	query.Set("bold", "true")
	return "https://ui-avatars.com/api/?" + query.Encode()
}

// Initials derives at most two uppercase initials from the display name.
func Initials(displayName string) string {
	var letters []rune
	for _, word := range strings.Fields(displayName) {
		letters = append(letters, []rune(word)[0])
		if len(letters) == 2 {
			break
		}
	}
	if len(letters) == 0 {
		return "AI"
	}
	return strings.ToUpper(string(letters))
}
