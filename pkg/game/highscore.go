package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys of the high score record.
const (
	highScoreObject   = "scores"
	highScoreProperty = "powerShooterHighScore"
)

// HighScoreRecord is the persisted best run.
type HighScoreRecord struct {
	Score   int       `yaml:"score"`
	RunID   string    `yaml:"runID"`   // the session that set it
	SavedAt time.Time `yaml:"savedAt"` // wall clock at save
}

// HighScoreStore keeps the best score across runs.
//
// A nil gdata manager runs in memory only: scores are tracked for the
// current process and never written.
type HighScoreStore struct {
	gdataManager *gdata.Manager
	record       HighScoreRecord
}

// NewHighScoreStore creates the store and loads the saved record. A record
// that cannot be read is logged and treated as no record.
func NewHighScoreStore(gdataManager *gdata.Manager) *HighScoreStore {
	s := &HighScoreStore{gdataManager: gdataManager}
	if err := s.Load(); err != nil {
		log.Printf("[HighScore] Warning: %v (starting from 0)", err)
	}
	return s
}

// Load reads the saved record, replacing the one in memory.
func (s *HighScoreStore) Load() error {
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(highScoreObject, highScoreProperty) {
		s.record = HighScoreRecord{}
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		s.record = HighScoreRecord{}
		return fmt.Errorf("failed to load high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		s.record = HighScoreRecord{}
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	s.record = record
	log.Printf("[HighScore] Loaded %d (run %s)", record.Score, record.RunID)
	return nil
}

// LoadHighScore returns the best score seen so far.
func (s *HighScoreStore) LoadHighScore() int { return s.record.Score }

// Record returns a copy of the best run.
func (s *HighScoreStore) Record() HighScoreRecord { return s.record }

// SaveHighScore stores score as the best run, whatever the previous value.
func (s *HighScoreStore) SaveHighScore(score int, runID uuid.UUID) error {
	s.record = HighScoreRecord{Score: score, RunID: runID.String(), SavedAt: time.Now()}
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	log.Printf("[HighScore] Saved %d (run %s)", score, runID)
	return nil
}

// Submit saves score when it beats the best run and reports whether it did.
// The in-memory best is updated even when writing fails.
func (s *HighScoreStore) Submit(score int, runID uuid.UUID) (bool, error) {
	if score <= s.record.Score {
		return false, nil
	}
	return true, s.SaveHighScore(score, runID)
}
