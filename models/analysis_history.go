package models

import (
	"database/sql"
	"time"
)

// AnalysisSnapshot is one append-only record of a resume analysis run.
// Only JSON-serializable primitives are stored; the structured ParsedResume
// itself is not persisted.
type AnalysisSnapshot struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	VersionName     string    `json:"version_name"`
	Filename        string    `json:"filename"`
	ATSScore        float64   `json:"ats_score"`
	SkillsCount     int       `json:"skills_count"`
	ExperienceYears int       `json:"experience_years"`
	HasEmail        bool      `json:"has_email"`
	HasPhone        bool      `json:"has_phone"`
	HasLinkedIn     bool      `json:"has_linkedin"`
	HasGitHub       bool      `json:"has_github"`
	EducationCount  int       `json:"education_count"`
	ExperienceCount int       `json:"experience_count"`
	CreatedAt       time.Time `json:"timestamp"`
}

type AnalysisHistoryModel struct {
	DB *sql.DB
}

func NewAnalysisHistoryModel(db *sql.DB) *AnalysisHistoryModel {
	return &AnalysisHistoryModel{DB: db}
}

func (m *AnalysisHistoryModel) Create(s *AnalysisSnapshot) error {
	query := `
		INSERT INTO analysis_history
			(user_id, version_name, filename, ats_score, skills_count, experience_years,
			 has_email, has_phone, has_linkedin, has_github, education_count, experience_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`
	return m.DB.QueryRow(query,
		s.UserID, s.VersionName, s.Filename, s.ATSScore, s.SkillsCount, s.ExperienceYears,
		s.HasEmail, s.HasPhone, s.HasLinkedIn, s.HasGitHub, s.EducationCount, s.ExperienceCount,
	).Scan(&s.ID, &s.CreatedAt)
}

func (m *AnalysisHistoryModel) GetByUserID(userID int) ([]*AnalysisSnapshot, error) {
	query := `
		SELECT id, user_id, version_name, filename, ats_score, skills_count, experience_years,
		       has_email, has_phone, has_linkedin, has_github, education_count, experience_count, created_at
		FROM analysis_history
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*AnalysisSnapshot
	for rows.Next() {
		s := &AnalysisSnapshot{}
		err := rows.Scan(
			&s.ID, &s.UserID, &s.VersionName, &s.Filename, &s.ATSScore, &s.SkillsCount, &s.ExperienceYears,
			&s.HasEmail, &s.HasPhone, &s.HasLinkedIn, &s.HasGitHub, &s.EducationCount, &s.ExperienceCount, &s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (m *AnalysisHistoryModel) DeleteByUserID(userID int) error {
	_, err := m.DB.Exec(`DELETE FROM analysis_history WHERE user_id = $1`, userID)
	return err
}

// PruneOldest drops a user's oldest snapshots so at most keep remain.
func (m *AnalysisHistoryModel) PruneOldest(userID, keep int) error {
	query := `
		DELETE FROM analysis_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM analysis_history
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		)
	`
	_, err := m.DB.Exec(query, userID, keep)
	return err
}
