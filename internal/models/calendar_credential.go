package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CalendarCredential stores one user's Google Calendar OAuth tokens.
// Token holds the serialized oauth2.Token (access token, refresh token,
// expiry) so concurrent requests never share a process-wide credential.
type CalendarCredential struct {
	gorm.Model

	UserID uint           `gorm:"not null;uniqueIndex"`
	Token  datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
