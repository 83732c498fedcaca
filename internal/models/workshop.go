package models

import (
	"time"

	"gorm.io/gorm"
)

type Workshop struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	MentorID    uint `gorm:"not null;index"`
	Location    string
	DateTime    time.Time `gorm:"not null"`

	// Relationships
	Mentor      User         `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Activities  []Activity   `gorm:"foreignKey:WorkshopID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Enrollments []Enrollment `gorm:"foreignKey:WorkshopID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
