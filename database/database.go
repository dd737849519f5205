package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/AryanSingh257/ai-resume-analyzer/config"
)

func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	return db, nil
}

// Migrate creates the tables the analyzer needs if they are missing.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS analysis_history (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			version_name VARCHAR(255) NOT NULL,
			filename VARCHAR(255) NOT NULL,
			ats_score DOUBLE PRECISION NOT NULL,
			skills_count INTEGER NOT NULL DEFAULT 0,
			experience_years INTEGER NOT NULL DEFAULT 0,
			has_email BOOLEAN NOT NULL DEFAULT FALSE,
			has_phone BOOLEAN NOT NULL DEFAULT FALSE,
			has_linkedin BOOLEAN NOT NULL DEFAULT FALSE,
			has_github BOOLEAN NOT NULL DEFAULT FALSE,
			education_count INTEGER NOT NULL DEFAULT 0,
			experience_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_history_user_id ON analysis_history(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}
	return nil
}
