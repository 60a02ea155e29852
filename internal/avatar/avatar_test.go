package avatar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"ada", "A"},
		{"Ada Byron King Lovelace", "AB"},
		{"", "AI"},
		{"   ", "AI"},
	}

	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPlaceholderURL(t *testing.T) {
	raw := PlaceholderURL("Ada Lovelace", "0062FF")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing placeholder url: %v", err)
	}
	if parsed.Host != "ui-avatars.com" {
		t.Fatalf("unexpected host %s", parsed.Host)
	}

	query := parsed.Query()
	if query.Get("name") != "AL" {
		t.Fatalf("expected initials AL, got %q", query.Get("name"))
	}
	if query.Get("background") != "0062FF" {
		t.Fatalf("expected background 0062FF, got %q", query.Get("background"))
	}
}

func TestResolveExplicitURLWins(t *testing.T) {
	var fetched bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched = true
	}))
	defer server.Close()

	resolver := NewResolver(server.URL)
	got := resolver.Resolve(context.Background(), "https://example.com/me.png", "ada-lovelace", "Ada Lovelace")
	if got != "https://example.com/me.png" {
		t.Fatalf("expected explicit url, got %s", got)
	}
	if fetched {
		t.Fatal("expected no github lookup when an explicit url is given")
	}
}

func TestResolveFetchesGitHubAvatar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/ada-lovelace" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"avatar_url": "https://github.test/avatar.png"}`))
	}))
	defer server.Close()

	resolver := NewResolver(server.URL)
	got := resolver.Resolve(context.Background(), "", "ada-lovelace", "Ada Lovelace")
	if got != "https://github.test/avatar.png" {
		t.Fatalf("expected github avatar, got %s", got)
	}
}

func TestResolveSwallowsGitHubFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resolver := NewResolver(server.URL)
	got := resolver.Resolve(context.Background(), "", "ghost", "Ada Lovelace")
	if !strings.Contains(got, "ui-avatars.com") {
		t.Fatalf("expected placeholder fallback, got %s", got)
	}
	if !strings.Contains(got, "name=AL") {
		t.Fatalf("expected initials in placeholder, got %s", got)
	}
}

func TestResolveWithoutGitHubSkipsLookup(t *testing.T) {
	var fetched bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched = true
	}))
	defer server.Close()

	resolver := NewResolver(server.URL)
	got := resolver.Resolve(context.Background(), "", "", "Ada Lovelace")
	if fetched {
		t.Fatal("expected no github lookup without a login")
	}
	if !strings.Contains(got, "ui-avatars.com") {
		t.Fatalf("expected placeholder, got %s", got)
	}
}
