package models

import "time"

// The collections below are owned by a participant and must never outlive
// it; account deletion prunes them before removing the participant row.

type Submission struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipantID string    `gorm:"type:uuid;index" json:"participant_id"`
	Day           int       `json:"day"`
	ArtifactURL   string    `gorm:"column:artifact_url" json:"artifact_url"`
	SubmittedAt   time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

type PeerReview struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewerID   string    `gorm:"type:uuid;index" json:"reviewer_id"`
	SubmissionID string    `gorm:"type:uuid;index" json:"submission_id"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ParticipantAchievement struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipantID string    `gorm:"type:uuid;index" json:"participant_id"`
	Achievement   string    `json:"achievement"`
	AwardedAt     time.Time `gorm:"autoCreateTime" json:"awarded_at"`
}

type TaskForceMember struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	TaskForceID   string    `gorm:"type:uuid;index" json:"task_force_id"`
	ParticipantID string    `gorm:"type:uuid;index" json:"participant_id"`
	JoinedAt      time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

type ParticipantRecognition struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipantID string    `gorm:"type:uuid;index" json:"participant_id"`
	Kind          string    `json:"kind"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ActivityLogEntry struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	ParticipantID string    `gorm:"type:uuid;index" json:"participant_id"`
	Action        string    `json:"action"`
	Detail        string    `json:"detail"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityLogEntry) TableName() string {
	return "activity_log"
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  string    `gorm:"type:uuid;index" json:"author_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
