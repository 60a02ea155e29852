// Package registration creates participant records together with their
// dependent initialization rows.
package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/ai-academy/academyhub/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrDuplicate is returned when the email or GitHub login is already taken.
var ErrDuplicate = errors.New("email or github username already registered")

type Store interface {
	ParticipantExists(ctx context.Context, email, githubUsername string) (bool, error)
	CreateParticipant(ctx context.Context, participant *models.Participant) error
	InitLeaderboardEntry(ctx context.Context, participantID string) error
	InitMasteryEntry(ctx context.Context, participantID string) error
}

type AvatarResolver interface {
	Resolve(ctx context.Context, explicitURL, githubUsername, displayName string) string
}

type Service struct {
	store          Store
	avatars        AvatarResolver
	assignmentRepo string

	newID func() string
}

func NewService(store Store, avatars AvatarResolver, assignmentRepo string) *Service {
	return &Service{
		store:          store,
		avatars:        avatars,
		assignmentRepo: assignmentRepo,
		newID:          uuid.NewString,
	}
}

// Register validates the payload, gates on duplicates and inserts the
// participant with its zeroed leaderboard and lowest-tier mastery rows.
// The dependent inserts are best-effort: a failure there is logged but the
// registration still succeeds.
func (s *Service) Register(ctx context.Context, input *Input) (*models.Participant, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	exists, err := s.store.ParticipantExists(ctx, input.Email, input.GitHubUsername)
	if err != nil {
		return nil, fmt.Errorf("checking for duplicates: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	participant := &models.Participant{
		ID:                 s.newID(),
		Name:               input.Name,
		Nickname:           input.Nickname,
		Email:              input.Email,
		Role:               input.Role,
		Team:               input.Team,
		Stream:             input.Stream,
		GitHubUsername:     input.GitHubUsername,
		AvatarURL:          s.avatars.Resolve(ctx, input.AvatarURL, input.GitHubUsername, input.Name),
		AuthUserID:         input.AuthUserID,
		Status:             models.ParticipantStatusApproved,
		EmailNotifications: true,
	}
	if input.GitHubUsername != "" {
		participant.RepoURL = fmt.Sprintf("https://github.com/%s/%s", input.GitHubUsername, s.assignmentRepo)
	}

	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("creating participant: %w", err)
	}

	if err := s.store.InitLeaderboardEntry(ctx, participant.ID); err != nil {
		logrus.Errorf("failed to init leaderboard entry for %s: %v", participant.ID, err)
	}
	if err := s.store.InitMasteryEntry(ctx, participant.ID); err != nil {
		logrus.Errorf("failed to init mastery entry for %s: %v", participant.ID, err)
	}

	logrus.Infof(
		"Registered participant %s (nickname=%s, role=%s, team=%s, github=%v)",
		participant.ID,
		participant.Nickname,
		participant.Role,
		participant.Team,
		participant.GitHubUsername != "",
	)

	return participant, nil
}
