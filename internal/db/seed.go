package db

import (
	"fmt"

	"law-office-go/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the default admin/admin user when no admin exists yet, so
// a fresh install is reachable without manual SQL.
func SeedAdmin(db *gorm.DB, log logger.Logger) error {
	var count int64
	if err := db.Raw("SELECT COUNT(1) FROM users WHERE username = ?", "admin").Scan(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	err = db.Exec(
		"INSERT INTO users (username, password_hash, name, email, role) VALUES (?, ?, ?, ?, ?)",
		"admin", string(hash), "Administrator", "admin@localhost", "admin",
	).Error
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Warn("db: seeded default admin user, change its password", "username", "admin")
	return nil
}
