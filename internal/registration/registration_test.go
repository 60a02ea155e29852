package registration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ai-academy/academyhub/internal/models"
)

type fakeStore struct {
	existing map[string]bool

	created          []*models.Participant
	leaderboardInits []string
	masteryInits     []string

	existsErr      error
	leaderboardErr error
	masteryErr     error
}

func (f *fakeStore) ParticipantExists(ctx context.Context, email, githubUsername string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.existing[email] {
		return true, nil
	}
	return githubUsername != "" && f.existing[githubUsername], nil
}

func (f *fakeStore) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	f.created = append(f.created, participant)
	return nil
}

func (f *fakeStore) InitLeaderboardEntry(ctx context.Context, participantID string) error {
	if f.leaderboardErr != nil {
		return f.leaderboardErr
	}
	f.leaderboardInits = append(f.leaderboardInits, participantID)
	return nil
}

func (f *fakeStore) InitMasteryEntry(ctx context.Context, participantID string) error {
	if f.masteryErr != nil {
		return f.masteryErr
	}
	f.masteryInits = append(f.masteryInits, participantID)
	return nil
}

type fakeAvatars struct {
	resolved string
	calls    int
}

func (f *fakeAvatars) Resolve(ctx context.Context, explicitURL, githubUsername, displayName string) string {
	f.calls++
	if f.resolved != "" {
		return f.resolved
	}
	return "https://avatars.test/" + displayName
}

func newTestService(store *fakeStore, avatars *fakeAvatars) *Service {
	svc := NewService(store, avatars, "ai-academy-2026")
	svc.newID = func() string { return "participant-1" }
	return svc
}

func TestRegisterSuccess(t *testing.T) {
	store := &fakeStore{}
	avatars := &fakeAvatars{resolved: "https://avatars.test/ada"}
	svc := newTestService(store, avatars)

	input := validInput()
	input.GitHubUsername = "ada-lovelace"
	input.AuthUserID = "auth-1"

	participant, err := svc.Register(context.Background(), input)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if participant.ID != "participant-1" {
		t.Fatalf("expected participant-1, got %s", participant.ID)
	}
	if participant.Status != models.ParticipantStatusApproved {
		t.Fatalf("expected approved status, got %s", participant.Status)
	}
	if participant.AvatarURL != "https://avatars.test/ada" {
		t.Fatalf("unexpected avatar url %s", participant.AvatarURL)
	}
	if participant.RepoURL != "https://github.com/ada-lovelace/ai-academy-2026" {
		t.Fatalf("unexpected repo url %s", participant.RepoURL)
	}
	if !participant.EmailNotifications {
		t.Fatal("expected email notifications enabled by default")
	}

	if len(store.created) != 1 {
		t.Fatalf("expected 1 created participant, got %d", len(store.created))
	}
	if len(store.leaderboardInits) != 1 || store.leaderboardInits[0] != "participant-1" {
		t.Fatalf("expected leaderboard init for participant-1, got %v", store.leaderboardInits)
	}
	if len(store.masteryInits) != 1 || store.masteryInits[0] != "participant-1" {
		t.Fatalf("expected mastery init for participant-1, got %v", store.masteryInits)
	}
}

func TestRegisterWithoutGitHubLeavesRepoEmpty(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakeAvatars{})

	participant, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if participant.RepoURL != "" {
		t.Fatalf("expected empty repo url, got %s", participant.RepoURL)
	}
	if participant.GitHubUsername != "" {
		t.Fatalf("expected empty github username, got %s", participant.GitHubUsername)
	}
}

func TestRegisterValidationGatesBeforeWrites(t *testing.T) {
	store := &fakeStore{}
	avatars := &fakeAvatars{}
	svc := newTestService(store, avatars)

	input := validInput()
	input.Nickname = "Not Valid"

	_, err := svc.Register(context.Background(), input)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatal("expected no participant writes on validation failure")
	}
	if avatars.calls != 0 {
		t.Fatal("expected no avatar resolution on validation failure")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{"ada@example.com": true}}
	svc := newTestService(store, &fakeAvatars{})

	_, err := svc.Register(context.Background(), validInput())
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatal("expected no writes on duplicate")
	}
}

func TestRegisterDuplicateGitHubUsername(t *testing.T) {
	store := &fakeStore{existing: map[string]bool{"ada-lovelace": true}}
	svc := newTestService(store, &fakeAvatars{})

	input := validInput()
	input.GitHubUsername = "ada-lovelace"

	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestRegisterDependentInitFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{
		leaderboardErr: errors.New("leaderboard down"),
		masteryErr:     errors.New("mastery down"),
	}
	svc := newTestService(store, &fakeAvatars{})

	participant, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected registration to succeed despite init failures, got %v", err)
	}
	if participant.ID == "" {
		t.Fatal("expected a participant id")
	}
}

func TestRegisterDuplicateCheckErrorIsFatal(t *testing.T) {
	store := &fakeStore{existsErr: errors.New("db down")}
	svc := newTestService(store, &fakeAvatars{})

	_, err := svc.Register(context.Background(), validInput())
	if err == nil || !strings.Contains(err.Error(), "checking for duplicates") {
		t.Fatalf("expected duplicate-check error, got %v", err)
	}
}
