package storage

import (
	"context"
	"fmt"

	"github.com/ai-academy/academyhub/internal/models"
	"github.com/sirupsen/logrus"
)

// ownedCollection describes one table holding rows that must not outlive
// their participant, together with the column the ownership is keyed by.
type ownedCollection struct {
	name   string
	column string
	model  any
}

// Deletion order satisfies the referential dependencies between the
// collections; the participant row itself goes last.
var ownedCollections = []ownedCollection{
	{"submissions", "participant_id", &models.Submission{}},
	{"peer_reviews", "reviewer_id", &models.PeerReview{}},
	{"participant_achievements", "participant_id", &models.ParticipantAchievement{}},
	{"leaderboard", "participant_id", &models.LeaderboardEntry{}},
	{"participant_mastery", "participant_id", &models.MasteryEntry{}},
	{"task_force_members", "participant_id", &models.TaskForceMember{}},
	{"participant_recognitions", "participant_id", &models.ParticipantRecognition{}},
	{"activity_log", "participant_id", &models.ActivityLogEntry{}},
	{"comments", "author_id", &models.Comment{}},
}

// DeleteParticipantData removes every dependent row owned by the
// participant. Each collection is attempted regardless of earlier failures;
// the names of collections whose delete failed are returned so the caller
// can decide whether orphans are acceptable.
func (s *Storage) DeleteParticipantData(ctx context.Context, participantID string) []string {
	var failed []string
	for _, col := range ownedCollections {
		err := s.db.
			WithContext(ctx).
			Where(fmt.Sprintf("%s = ?", col.column), participantID).
			Delete(col.model).
			Error
		if err != nil {
			logrus.Errorf("failed to delete %s rows for participant %s: %v", col.name, participantID, err)
			failed = append(failed, col.name)
		}
	}
	return failed
}

func (s *Storage) DeleteParticipant(ctx context.Context, participantID string) error {
	if err := s.db.
		WithContext(ctx).
		Where("id = ?", participantID).
		Delete(&models.Participant{}).
		Error; err != nil {
		return fmt.Errorf("deleting participant: %w", err)
	}
	return nil
}

// CountOwnedRows reports how many dependent rows remain for the participant
// across all owned collections.
func (s *Storage) CountOwnedRows(ctx context.Context, participantID string) (int64, error) {
	var total int64
	for _, col := range ownedCollections {
		var count int64
		err := s.db.
			WithContext(ctx).
			Model(col.model).
			Where(fmt.Sprintf("%s = ?", col.column), participantID).
			Count(&count).
			Error
		if err != nil {
			return 0, fmt.Errorf("counting %s rows: %w", col.name, err)
		}
		total += count
	}
	return total, nil
}
