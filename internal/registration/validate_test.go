package registration

import (
	"errors"
	"testing"

	"github.com/ai-academy/academyhub/internal/models"
)

func validInput() *Input {
	return &Input{
		Name:     "Ada Lovelace",
		Nickname: "ada_l",
		Email:    "ada@example.com",
		Role:     models.RoleAISE,
		Team:     models.TeamAlpha,
		Stream:   models.StreamTech,
	}
}

func TestValidateInputAccepts(t *testing.T) {
	if err := ValidateInput(validInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	withGitHub := validInput()
	withGitHub.GitHubUsername = "ada-lovelace"
	withGitHub.AvatarURL = "https://example.com/a.png"
	if err := ValidateInput(withGitHub); err != nil {
		t.Fatalf("expected valid input with github, got %v", err)
	}
}

func TestValidateInputNicknames(t *testing.T) {
	valid := []string{"ab", "a1", "some-nick", "under_score", "x0_-", "abcdefghijklmnopqrstuvwxyz0123"}
	for _, nick := range valid {
		input := validInput()
		input.Nickname = nick
		if err := ValidateInput(input); err != nil {
			t.Errorf("nickname %q: expected valid, got %v", nick, err)
		}
	}

	invalid := []string{"", "a", "Ada", "ada lovelace", "ada!", "тест", "abcdefghijklmnopqrstuvwxyz01234"}
	for _, nick := range invalid {
		input := validInput()
		input.Nickname = nick
		err := ValidateInput(input)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("nickname %q: expected ValidationError, got %v", nick, err)
			continue
		}
		if _, ok := verr.Fields["nickname"]; !ok {
			t.Errorf("nickname %q: expected a nickname field message, got %v", nick, verr.Fields)
		}
	}
}

func TestValidateInputCollectsAllFields(t *testing.T) {
	input := &Input{
		Nickname: "Bad Nick",
		Email:    "not-an-email",
		Role:     "Wizard",
		Team:     "Omega",
		Stream:   "Magic",
	}

	err := ValidateInput(input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	for _, field := range []string{"name", "nickname", "email", "role", "team", "stream"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("expected a message for %s, got %v", field, verr.Fields)
		}
	}
}

func TestValidateInputEnumMembership(t *testing.T) {
	input := validInput()
	input.Role = "SRE"
	err := ValidateInput(input)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["role"]; !ok {
		t.Fatalf("expected a role message, got %v", verr.Fields)
	}
}
