package models

import "time"

type ParticipantStatus string

const (
	ParticipantStatusApproved ParticipantStatus = "approved"
)

type Role string

const (
	RoleFDE   Role = "FDE"
	RoleAISE  Role = "AI-SE"
	RoleAIPM  Role = "AI-PM"
	RoleAIDA  Role = "AI-DA"
	RoleAIDS  Role = "AI-DS"
	RoleAISEC Role = "AI-SEC"
	RoleAIFE  Role = "AI-FE"
)

type Team string

const (
	TeamAlpha   Team = "Alpha"
	TeamBeta    Team = "Beta"
	TeamGamma   Team = "Gamma"
	TeamDelta   Team = "Delta"
	TeamEpsilon Team = "Epsilon"
	TeamZeta    Team = "Zeta"
	TeamEta     Team = "Eta"
	TeamTheta   Team = "Theta"
)

type Stream string

const (
	StreamTech     Stream = "Tech"
	StreamBusiness Stream = "Business"
)

func Roles() []Role {
	return []Role{RoleFDE, RoleAISE, RoleAIPM, RoleAIDA, RoleAIDS, RoleAISEC, RoleAIFE}
}

func Teams() []Team {
	return []Team{TeamAlpha, TeamBeta, TeamGamma, TeamDelta, TeamEpsilon, TeamZeta, TeamEta, TeamTheta}
}

func Streams() []Stream {
	return []Stream{StreamTech, StreamBusiness}
}

type Participant struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `json:"name"`
	Nickname string `gorm:"uniqueIndex" json:"nickname"`
	Email    string `gorm:"uniqueIndex" json:"email"`

	Role   Role   `json:"role"`
	Team   Team   `json:"team"`
	Stream Stream `json:"stream"`

	GitHubUsername string `gorm:"column:github_username;index" json:"github_username,omitempty"`
	AvatarURL      string `gorm:"column:avatar_url" json:"avatar_url"`
	RepoURL        string `gorm:"column:repo_url" json:"repo_url,omitempty"`

	// ID of the identity-provider user this participant is linked to.
	// Empty until the account is linked.
	AuthUserID string `gorm:"column:auth_user_id;index" json:"auth_user_id,omitempty"`

	Status             ParticipantStatus `json:"status"`
	IsAdmin            bool              `gorm:"column:is_admin" json:"is_admin"`
	EmailNotifications bool              `gorm:"column:email_notifications" json:"email_notifications"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Participant) Linked() bool {
	return p.AuthUserID != ""
}
