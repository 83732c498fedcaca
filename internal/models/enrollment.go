package models

import "gorm.io/gorm"

// Enrollment links a learner to a workshop. The pair is deliberately
// not unique: enrolling twice in the same workshop is accepted, matching
// the behavior existing clients rely on.
type Enrollment struct {
	gorm.Model

	LearnerID  uint `gorm:"not null;index"`
	WorkshopID uint `gorm:"not null;index"`

	// Relationships
	Learner  User     `gorm:"foreignKey:LearnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Workshop Workshop `gorm:"foreignKey:WorkshopID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
