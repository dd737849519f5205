package services

import (
	"database/sql"
	"fmt"

	"github.com/AryanSingh257/ai-resume-analyzer/models"
)

// HistoryService records analysis snapshots so users can track score
// progress across resume versions.
type HistoryService struct {
	history *models.AnalysisHistoryModel
	retain  int
}

// NewHistoryService keeps at most retain snapshots per user; zero or
// negative disables pruning.
func NewHistoryService(db *sql.DB, retain int) *HistoryService {
	return &HistoryService{history: models.NewAnalysisHistoryModel(db), retain: retain}
}

// Record stores one snapshot built from a parse and score result.
func (s *HistoryService) Record(userID int, versionName, filename string, parsed models.ParsedResume, ats models.ATSResult) (*models.AnalysisSnapshot, error) {
	snapshot := &models.AnalysisSnapshot{
		UserID:          userID,
		VersionName:     versionName,
		Filename:        filename,
		ATSScore:        ats.Score,
		SkillsCount:     parsed.Skills.TotalCount,
		ExperienceYears: parsed.Experience.TotalYears,
		HasEmail:        parsed.ContactInfo.Email != "",
		HasPhone:        parsed.ContactInfo.Phone != "",
		HasLinkedIn:     parsed.ContactInfo.Links.LinkedIn != "",
		HasGitHub:       parsed.ContactInfo.Links.GitHub != "",
		EducationCount:  len(parsed.Education),
		ExperienceCount: len(parsed.Experience.Details),
	}
	if err := s.history.Create(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save analysis snapshot: %w", err)
	}
	if s.retain > 0 {
		if err := s.history.PruneOldest(userID, s.retain); err != nil {
			return nil, fmt.Errorf("failed to prune old snapshots: %w", err)
		}
	}
	return snapshot, nil
}

// Timeline returns the user's snapshots oldest first.
func (s *HistoryService) Timeline(userID int) ([]*models.AnalysisSnapshot, error) {
	return s.history.GetByUserID(userID)
}

// Progress summarizes score movement between the first and latest
// snapshots. With fewer than two snapshots the delta is zero.
func (s *HistoryService) Progress(userID int) (first, latest, delta float64, err error) {
	snapshots, err := s.history.GetByUserID(userID)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(snapshots) == 0 {
		return 0, 0, 0, nil
	}
	first = snapshots[0].ATSScore
	latest = snapshots[len(snapshots)-1].ATSScore
	return first, latest, latest - first, nil
}

// Clear deletes all of a user's snapshots.
func (s *HistoryService) Clear(userID int) error {
	return s.history.DeleteByUserID(userID)
}
