package models

import "time"

// LeaderboardEntry tracks per-participant scoring, created zeroed at
// registration and re-ranked out of band.
type LeaderboardEntry struct {
	ParticipantID string `gorm:"type:uuid;primaryKey" json:"participant_id"`

	TotalPoints       int  `json:"total_points"`
	TotalSubmissions  int  `json:"total_submissions"`
	OnTimeSubmissions int  `json:"on_time_submissions"`
	CurrentStreak     int  `json:"current_streak"`
	Rank              *int `json:"rank"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Clearance string

const (
	ClearanceRecruit    Clearance = "RECRUIT"
	ClearanceOperative  Clearance = "OPERATIVE"
	ClearanceSpecialist Clearance = "SPECIALIST"
	ClearanceCommander  Clearance = "COMMANDER"
)

// MasteryEntry is the participant's progression record, created at the
// lowest tier at registration.
type MasteryEntry struct {
	ParticipantID string `gorm:"type:uuid;primaryKey" json:"participant_id"`

	MasteryLevel       int       `json:"mastery_level"`
	Clearance          Clearance `json:"clearance"`
	DaysCompleted      int       `json:"days_completed"`
	ArtifactsSubmitted int       `json:"artifacts_submitted"`
	AITutorSessions    int       `gorm:"column:ai_tutor_sessions" json:"ai_tutor_sessions"`
	PeerAssistsGiven   int       `json:"peer_assists_given"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MasteryEntry) TableName() string {
	return "participant_mastery"
}
