package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name                    string `gorm:"not null"`
	Email                   string `gorm:"uniqueIndex;not null"`
	PasswordHash            string `gorm:"not null"`
	Role                    string `gorm:"not null"` // "mentor" or "learner"
	NotificationPreferences bool   `gorm:"default:true"`

	// Relationships
	Workshops          []Workshop          `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Enrollments        []Enrollment        `gorm:"foreignKey:LearnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	CalendarCredential *CalendarCredential `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
