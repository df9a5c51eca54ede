// ABOUTME: Session summary persistence for cross-session continuity
// ABOUTME: Session numbers are monotonic per user, assigned at close time
package storage

import (
	"database/sql"
	"time"

	"github.com/purposewaze/relate-coach/internal/models"
)

// SummaryStore handles session summary persistence
type SummaryStore struct {
	db *DB
}

// NewSummaryStore creates a new SummaryStore
func NewSummaryStore(db *DB) *SummaryStore {
	return &SummaryStore{db: db}
}

// Save saves a session summary
func (s *SummaryStore) Save(summary *models.SessionSummary) error {
	createdAt := summary.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO session_summaries
			(id, user_id, session_id, session_number, topics, techniques,
			 homework, affect_trajectory, triage_colors, breakthrough,
			 message_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			topics = excluded.topics,
			techniques = excluded.techniques,
			homework = excluded.homework,
			affect_trajectory = excluded.affect_trajectory,
			triage_colors = excluded.triage_colors,
			breakthrough = excluded.breakthrough,
			message_count = excluded.message_count
	`, summary.SummaryID, summary.UserID, nullString(summary.SessionID),
		summary.SessionNumber, encodeList(summary.Topics), encodeList(summary.Techniques),
		encodeList(summary.Homework), encodeList(summary.AffectTrajectory),
		encodeList(triageColorsToStrings(summary.TriageColors)),
		nullString(summary.Breakthrough), summary.MessageCount, createdAt)

	return err
}

// Latest returns the most recent summary for a user, nil if none exists
func (s *SummaryStore) Latest(userID string) (*models.SessionSummary, error) {
	row := s.db.QueryRow(summarySelect+`
		WHERE user_id = ?
		ORDER BY session_number DESC
		LIMIT 1
	`, userID)

	summary, err := scanSummary(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetByNumber returns a specific session summary, nil if none exists
func (s *SummaryStore) GetByNumber(userID string, sessionNumber int) (*models.SessionSummary, error) {
	row := s.db.QueryRow(summarySelect+`
		WHERE user_id = ? AND session_number = ?
	`, userID, sessionNumber)

	summary, err := scanSummary(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ListByUser returns all summaries for a user, newest first
func (s *SummaryStore) ListByUser(userID string) ([]models.SessionSummary, error) {
	rows, err := s.db.Query(summarySelect+`
		WHERE user_id = ?
		ORDER BY session_number DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var summaries []models.SessionSummary
	for rows.Next() {
		summary, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, rows.Err()
}

// NextSessionNumber returns the session number the next close should use
func (s *SummaryStore) NextSessionNumber(userID string) (int, error) {
	var max int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(session_number), 0)
		FROM session_summaries
		WHERE user_id = ?
	`, userID).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

const summarySelect = `
	SELECT id, user_id, session_id, session_number, topics, techniques,
	       homework, affect_trajectory, triage_colors, breakthrough,
	       message_count, created_at
	FROM session_summaries`

// scanSummary scans one summary row via the given scan function
func scanSummary(scan func(dest ...interface{}) error) (*models.SessionSummary, error) {
	var (
		summary      models.SessionSummary
		sessionID    sql.NullString
		topics       sql.NullString
		techniques   sql.NullString
		homework     sql.NullString
		trajectory   sql.NullString
		triageColors sql.NullString
		breakthrough sql.NullString
	)

	err := scan(&summary.SummaryID, &summary.UserID, &sessionID, &summary.SessionNumber,
		&topics, &techniques, &homework, &trajectory, &triageColors,
		&breakthrough, &summary.MessageCount, &summary.CreatedAt)
	if err != nil {
		return nil, err
	}

	summary.SessionID = sessionID.String
	summary.Breakthrough = breakthrough.String
	if topics.Valid {
		summary.Topics = decodeList(topics.String)
	}
	if techniques.Valid {
		summary.Techniques = decodeList(techniques.String)
	}
	if homework.Valid {
		summary.Homework = decodeList(homework.String)
	}
	if trajectory.Valid {
		summary.AffectTrajectory = decodeList(trajectory.String)
	}
	if triageColors.Valid {
		summary.TriageColors = stringsToTriageColors(decodeList(triageColors.String))
	}

	return &summary, nil
}

func triageColorsToStrings(colors []models.TriageColor) []string {
	var out []string
	for _, c := range colors {
		out = append(out, string(c))
	}
	return out
}

func stringsToTriageColors(items []string) []models.TriageColor {
	var out []models.TriageColor
	for _, s := range items {
		out = append(out, models.TriageColor(s))
	}
	return out
}
