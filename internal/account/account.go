// Package account handles participant account removal: the dependent-row
// cascade, the participant row and finally the principal at the identity
// provider.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/ai-academy/academyhub/internal/idp"
	"github.com/ai-academy/academyhub/internal/models"
	"github.com/ai-academy/academyhub/internal/storage"
	"github.com/sirupsen/logrus"
)

type Store interface {
	GetParticipantByAuthUserID(ctx context.Context, authUserID string) (*models.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (*models.Participant, error)
	DeleteParticipantData(ctx context.Context, participantID string) []string
	DeleteParticipant(ctx context.Context, participantID string) error
}

type Principals interface {
	AdminDeleteUser(ctx context.Context, userID string) error
}

type Service struct {
	store      Store
	principals Principals
}

func NewService(store Store, principals Principals) *Service {
	return &Service{store: store, principals: principals}
}

// Delete removes everything owned by the principal. The dependent-row
// cascade and the participant delete are best-effort: failures are logged
// and the sequence continues, accepting orphans over a half-deleted
// account that blocks the principal removal. Only the final principal
// delete at the identity provider is fatal.
func (s *Service) Delete(ctx context.Context, user *idp.User) error {
	participant, err := s.findParticipant(ctx, user)
	if err != nil {
		return err
	}

	if participant != nil {
		if failed := s.store.DeleteParticipantData(ctx, participant.ID); len(failed) > 0 {
			logrus.Warnf(
				"cascade for participant %s left %d collections with possible orphans: %v",
				participant.ID, len(failed), failed,
			)
		}

		if err := s.store.DeleteParticipant(ctx, participant.ID); err != nil {
			logrus.Errorf("failed to delete participant %s: %v", participant.ID, err)
		}
	}

	if err := s.principals.AdminDeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("deleting auth user: %w", err)
	}

	logrus.Infof("Deleted account for auth user %s (email=%s)", user.ID, user.Email)
	return nil
}

// findParticipant resolves by the persisted link or the principal's email.
// A principal without a participant is fine; deletion then only removes the
// principal itself.
func (s *Service) findParticipant(ctx context.Context, user *idp.User) (*models.Participant, error) {
	participant, err := s.store.GetParticipantByAuthUserID(ctx, user.ID)
	if err == nil {
		return participant, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("looking up by auth user id: %w", err)
	}

	if user.Email == "" {
		return nil, nil
	}

	participant, err = s.store.GetParticipantByEmail(ctx, user.Email)
	if err == nil {
		return participant, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("looking up by email: %w", err)
	}
	return nil, nil
}
