// Package identity maps authenticated principals to participant records.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/ai-academy/academyhub/internal/models"
	"github.com/ai-academy/academyhub/internal/storage"
	"github.com/sirupsen/logrus"
)

// ErrNoParticipant is returned when no lookup strategy matched.
var ErrNoParticipant = errors.New("no participant for principal")

type ParticipantStore interface {
	GetParticipantByAuthUserID(ctx context.Context, authUserID string) (*models.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (*models.Participant, error)
	GetParticipantByGitHubUsername(ctx context.Context, login string) (*models.Participant, error)
	LinkAuthUser(ctx context.Context, participantID, authUserID string) error
	UpdateGitHubUsername(ctx context.Context, participantID, login, repoURL string) error
	IsActiveAdmin(ctx context.Context, userID string) (bool, error)
}

type Resolver struct {
	store          ParticipantStore
	assignmentRepo string
}

func NewResolver(store ParticipantStore, assignmentRepo string) *Resolver {
	return &Resolver{store: store, assignmentRepo: assignmentRepo}
}

// Resolve finds the participant behind a principal. Strategies are tried in
// order and the first match wins: the persisted link, then the principal's
// email, then its GitHub login. A match through one of the fallback
// strategies persists the link opportunistically; the returned bool reports
// whether that write happened on this call. A failed link write is logged
// and does not fail the resolution.
func (r *Resolver) Resolve(ctx context.Context, user *idp.User) (*models.Participant, bool, error) {
	participant, linkPerformed, err := r.resolve(ctx, user)
	if err != nil {
		return nil, false, err
	}
	r.backfillGitHub(ctx, participant, user)
	return participant, linkPerformed, nil
}

func (r *Resolver) resolve(ctx context.Context, user *idp.User) (*models.Participant, bool, error) {
	participant, err := r.store.GetParticipantByAuthUserID(ctx, user.ID)
	if err == nil {
		return participant, false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, false, fmt.Errorf("looking up by auth user id: %w", err)
	}

	if user.Email != "" {
		participant, err = r.store.GetParticipantByEmail(ctx, user.Email)
		if err == nil {
			return participant, r.linkBack(ctx, participant, user), nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, false, fmt.Errorf("looking up by email: %w", err)
		}
	}

	if login := user.GitHubUsername(); login != "" {
		participant, err = r.store.GetParticipantByGitHubUsername(ctx, login)
		if err == nil {
			return participant, r.linkBack(ctx, participant, user), nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, false, fmt.Errorf("looking up by github username: %w", err)
		}
	}

	return nil, false, ErrNoParticipant
}

func (r *Resolver) linkBack(ctx context.Context, participant *models.Participant, user *idp.User) bool {
	if participant.Linked() {
		return false
	}

	if err := r.store.LinkAuthUser(ctx, participant.ID, user.ID); err != nil {
		logrus.Errorf("failed to link participant %s to auth user %s: %v", participant.ID, user.ID, err)
		return false
	}

	participant.AuthUserID = user.ID
	return true
}

// backfillGitHub records the principal's GitHub login on a participant that
// registered without one, typically on the first resolution after identity
// linking completes. Best-effort: a failed write is logged and the
// resolution stands.
func (r *Resolver) backfillGitHub(ctx context.Context, participant *models.Participant, user *idp.User) {
	login := user.GitHubUsername()
	if login == "" || participant.GitHubUsername != "" {
		return
	}

	repoURL := fmt.Sprintf("https://github.com/%s/%s", login, r.assignmentRepo)
	if err := r.store.UpdateGitHubUsername(ctx, participant.ID, login, repoURL); err != nil {
		logrus.Errorf("failed to record github login for participant %s: %v", participant.ID, err)
		return
	}
	participant.GitHubUsername = login
	participant.RepoURL = repoURL
}

// IsAdmin checks the administrator membership for a principal. It is
// independent of participant resolution: an admin needs no profile.
func (r *Resolver) IsAdmin(ctx context.Context, userID string) (bool, error) {
	isAdmin, err := r.store.IsActiveAdmin(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("checking admin membership: %w", err)
	}
	return isAdmin, nil
}
