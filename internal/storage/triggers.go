// ABOUTME: Cross-pillar trigger table with seeded defaults
// ABOUTME: Rows are toggled via is_active rather than deleted
package storage

import (
	"database/sql"

	"github.com/purposewaze/relate-coach/internal/models"
)

// TriggerStore handles cross-pillar trigger persistence
type TriggerStore struct {
	db *DB
}

// NewTriggerStore creates a new TriggerStore
func NewTriggerStore(db *DB) *TriggerStore {
	return &TriggerStore{db: db}
}

// Save saves a trigger row
func (s *TriggerStore) Save(trigger *models.CrossPillarTrigger) error {
	_, err := s.db.Exec(`
		INSERT INTO cross_pillar_triggers
			(id, keywords, affected_pillars, presenting_symptom, root_cause,
			 recommended_domains, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			keywords = excluded.keywords,
			affected_pillars = excluded.affected_pillars,
			presenting_symptom = excluded.presenting_symptom,
			root_cause = excluded.root_cause,
			recommended_domains = excluded.recommended_domains,
			is_active = excluded.is_active
	`, trigger.TriggerID, encodeList(trigger.Keywords),
		encodeList(pillarsToStrings(trigger.AffectedPillars)),
		nullString(trigger.PresentingSymptom), nullString(trigger.RootCause),
		encodeList(trigger.RecommendedDomains), boolToInt(trigger.IsActive))

	return err
}

// Active returns all active trigger rows
func (s *TriggerStore) Active() ([]models.CrossPillarTrigger, error) {
	return s.list(`WHERE is_active = 1`)
}

// All returns every trigger row including inactive ones
func (s *TriggerStore) All() ([]models.CrossPillarTrigger, error) {
	return s.list(``)
}

// SetActive toggles a trigger row
func (s *TriggerStore) SetActive(triggerID string, active bool) error {
	_, err := s.db.Exec(`
		UPDATE cross_pillar_triggers SET is_active = ? WHERE id = ?
	`, boolToInt(active), triggerID)
	return err
}

// Count returns the total number of trigger rows
func (s *TriggerStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM cross_pillar_triggers`).Scan(&count)
	return count, err
}

// SeedDefaults inserts the built-in trigger rows if the table is empty
func (s *TriggerStore) SeedDefaults() error {
	count, err := s.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, trigger := range defaultTriggers {
		t := trigger
		if err := s.Save(&t); err != nil {
			return err
		}
	}
	return nil
}

func (s *TriggerStore) list(where string) ([]models.CrossPillarTrigger, error) {
	rows, err := s.db.Query(`
		SELECT id, keywords, affected_pillars, presenting_symptom, root_cause,
		       recommended_domains, is_active
		FROM cross_pillar_triggers ` + where + `
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var triggers []models.CrossPillarTrigger
	for rows.Next() {
		var (
			trigger  models.CrossPillarTrigger
			keywords sql.NullString
			pillars  sql.NullString
			symptom  sql.NullString
			cause    sql.NullString
			domains  sql.NullString
			isActive int
		)

		if err := rows.Scan(&trigger.TriggerID, &keywords, &pillars, &symptom,
			&cause, &domains, &isActive); err != nil {
			return nil, err
		}

		trigger.Keywords = decodeList(keywords.String)
		trigger.AffectedPillars = stringsToPillars(decodeList(pillars.String))
		trigger.PresentingSymptom = symptom.String
		trigger.RootCause = cause.String
		trigger.RecommendedDomains = decodeList(domains.String)
		trigger.IsActive = isActive != 0

		triggers = append(triggers, trigger)
	}
	return triggers, rows.Err()
}

// defaultTriggers are seeded on first open. They extend the built-in cascade
// patterns with slower-moving life situations a keyword cascade misses.
var defaultTriggers = []models.CrossPillarTrigger{
	{
		TriggerID:          "trig_chronic_pain",
		Keywords:           []string{"chronic pain", "always in pain", "my back", "migraines"},
		AffectedPillars:    []models.Pillar{models.PillarPhysical, models.PillarRelational},
		PresentingSymptom:  "Withdrawal and irritability toward partner",
		RootCause:          "Unmanaged chronic pain depleting patience and presence",
		RecommendedDomains: []string{"communication_conflict", "intimacy_sexuality"},
		IsActive:           true,
	},
	{
		TriggerID:          "trig_postpartum",
		Keywords:           []string{"since the baby", "newborn", "postpartum", "after the birth"},
		AffectedPillars:    []models.Pillar{models.PillarPhysical, models.PillarMental, models.PillarRelational},
		PresentingSymptom:  "Feeling like roommates, constant friction over small things",
		RootCause:          "Postpartum depletion and role renegotiation strain",
		RecommendedDomains: []string{"parenting_family", "intimacy_sexuality"},
		IsActive:           true,
	},
	{
		TriggerID:          "trig_job_loss",
		Keywords:           []string{"got laid off", "lost my job", "out of work", "unemployed"},
		AffectedPillars:    []models.Pillar{models.PillarFinancial, models.PillarMental},
		PresentingSymptom:  "Shame-driven withdrawal read as rejection by partner",
		RootCause:          "Job loss destabilizing provider identity and self-worth",
		RecommendedDomains: []string{"financial_mens", "communication_conflict"},
		IsActive:           true,
	},
	{
		TriggerID:          "trig_bereavement",
		Keywords:           []string{"passed away", "since the funeral", "grieving", "lost my dad", "lost my mom"},
		AffectedPillars:    []models.Pillar{models.PillarMental, models.PillarSpiritual},
		PresentingSymptom:  "Emotional unavailability mistaken for growing apart",
		RootCause:          "Unprocessed grief consuming emotional bandwidth",
		RecommendedDomains: []string{"foundation_attachment", "communication_conflict"},
		IsActive:           true,
	},
	{
		TriggerID:          "trig_shift_work",
		Keywords:           []string{"night shift", "opposite schedules", "never see each other"},
		AffectedPillars:    []models.Pillar{models.PillarPhysical, models.PillarRelational},
		PresentingSymptom:  "Disconnection and missed bids for attention",
		RootCause:          "Schedule misalignment eroding shared rituals",
		RecommendedDomains: []string{"foundation_attachment", "intimacy_sexuality"},
		IsActive:           true,
	},
	{
		TriggerID:          "trig_perimenopause",
		Keywords:           []string{"perimenopause", "menopause", "hot flashes", "hormones lately"},
		AffectedPillars:    []models.Pillar{models.PillarPhysical, models.PillarMental},
		PresentingSymptom:  "Sudden mood volatility and loss of desire read as relational decline",
		RootCause:          "Hormonal transition affecting mood, sleep, and libido",
		RecommendedDomains: []string{"intimacy_sexuality", "communication_conflict"},
		IsActive:           true,
	},
}

func pillarsToStrings(pillars []models.Pillar) []string {
	var out []string
	for _, p := range pillars {
		out = append(out, string(p))
	}
	return out
}

func stringsToPillars(items []string) []models.Pillar {
	var out []models.Pillar
	for _, s := range items {
		out = append(out, models.Pillar(s))
	}
	return out
}
