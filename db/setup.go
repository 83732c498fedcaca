package db

import (
	"github.com/workshophub-dev/workshophub/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

// MigrateDatabase is additive: tables are created when missing and
// never dropped or recreated.
func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Workshop{},
		&models.Activity{},
		&models.Enrollment{},
		&models.CalendarCredential{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
