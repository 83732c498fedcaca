package models

import (
	"time"

	"gorm.io/gorm"
)

type Activity struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	WorkshopID  uint      `gorm:"not null;index"`
	DateTime    time.Time `gorm:"not null"`

	// Relationships
	Workshop Workshop `gorm:"foreignKey:WorkshopID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
