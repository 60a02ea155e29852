package models

import "time"

// AdminUser grants elevated privileges to an identity-provider user. It is
// keyed by the provider's user id and is independent of the participants
// table: an admin does not need a participant profile.
type AdminUser struct {
	UserID   string `gorm:"column:user_id;primaryKey" json:"user_id"`
	IsActive bool   `gorm:"column:is_active" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
