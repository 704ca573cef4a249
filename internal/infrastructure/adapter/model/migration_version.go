package model

import "time"

// MigrationVersion records applied schema versions.
type MigrationVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"size:20;not null"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"size:255"`
}

// TableName returns the table name for the MigrationVersion model
func (MigrationVersion) TableName() string {
	return "schema_migrations"
}
