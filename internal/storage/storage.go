package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ai-academy/academyhub/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups that matched no row.
var ErrNotFound = errors.New("not found")

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Migrate() error {
	if err := s.db.AutoMigrate(
		&models.Participant{},
		&models.LeaderboardEntry{},
		&models.MasteryEntry{},
		&models.Submission{},
		&models.PeerReview{},
		&models.ParticipantAchievement{},
		&models.TaskForceMember{},
		&models.ParticipantRecognition{},
		&models.ActivityLogEntry{},
		&models.Comment{},
		&models.AdminUser{},
	); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	return nil
}

func (s *Storage) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	return s.getParticipantWhere(ctx, "id = ?", id)
}

func (s *Storage) GetParticipantByAuthUserID(ctx context.Context, authUserID string) (*models.Participant, error) {
	return s.getParticipantWhere(ctx, "auth_user_id = ?", authUserID)
}

func (s *Storage) GetParticipantByEmail(ctx context.Context, email string) (*models.Participant, error) {
	return s.getParticipantWhere(ctx, "email = ?", email)
}

func (s *Storage) GetParticipantByGitHubUsername(ctx context.Context, login string) (*models.Participant, error) {
	return s.getParticipantWhere(ctx, "github_username = ?", login)
}

func (s *Storage) getParticipantWhere(ctx context.Context, query string, args ...any) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.WithContext(ctx).Where(query, args...).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting participant: %w", err)
	}
	return &participant, nil
}

// ParticipantExists reports whether some participant already claims the
// email or, when non-empty, the GitHub login.
func (s *Storage) ParticipantExists(ctx context.Context, email, githubUsername string) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.Participant{}).Where("email = ?", email)
	if githubUsername != "" {
		q = s.db.WithContext(ctx).
			Model(&models.Participant{}).
			Where("email = ? OR github_username = ?", email, githubUsername)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting participants: %w", err)
	}
	return count > 0, nil
}

func (s *Storage) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if err := s.db.WithContext(ctx).Create(participant).Error; err != nil {
		return fmt.Errorf("creating participant: %w", err)
	}
	return nil
}

// LinkAuthUser records the identity-provider user id on a participant found
// through one of the fallback lookup strategies.
func (s *Storage) LinkAuthUser(ctx context.Context, participantID, authUserID string) error {
	if err := s.db.
		WithContext(ctx).
		Model(&models.Participant{}).
		Where("id = ?", participantID).
		Updates(map[string]any{
			"auth_user_id": authUserID,
		}).
		Error; err != nil {
		return fmt.Errorf("linking auth user: %w", err)
	}
	return nil
}

func (s *Storage) UpdateGitHubUsername(ctx context.Context, participantID, login, repoURL string) error {
	if err := s.db.
		WithContext(ctx).
		Model(&models.Participant{}).
		Where("id = ?", participantID).
		Updates(map[string]any{
			"github_username": login,
			"repo_url":        repoURL,
		}).
		Error; err != nil {
		return fmt.Errorf("updating github username: %w", err)
	}
	return nil
}

func (s *Storage) InitLeaderboardEntry(ctx context.Context, participantID string) error {
	entry := &models.LeaderboardEntry{
		ParticipantID: participantID,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating leaderboard entry: %w", err)
	}
	return nil
}

func (s *Storage) InitMasteryEntry(ctx context.Context, participantID string) error {
	entry := &models.MasteryEntry{
		ParticipantID: participantID,
		MasteryLevel:  1,
		Clearance:     models.ClearanceRecruit,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("creating mastery entry: %w", err)
	}
	return nil
}

func (s *Storage) CreateAdminUser(ctx context.Context, userID string, active bool) error {
	admin := &models.AdminUser{
		UserID:   userID,
		IsActive: active,
	}
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	return nil
}

func (s *Storage) IsActiveAdmin(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := s.db.
		WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).
		Error; err != nil {
		return false, fmt.Errorf("checking admin membership: %w", err)
	}
	return count > 0, nil
}
