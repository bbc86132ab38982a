package config

import (
	"log"

	"glossary-cms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema. Cascade
// rules are enforced by the services inside transactions, so store-level
// foreign key constraints stay off.
func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(DatabaseDSN), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Label{},
		&models.Term{},
		&models.TermVersion{},
		&models.TermVersionTranslation{},
		&models.TermLabel{},
		&models.Comment{},
	)
}
