package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/techmart-labs/techmart-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stateSnapshot is the single-row table backing SQLite snapshot storage.
type stateSnapshot struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Payload   string    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (stateSnapshot) TableName() string {
	return "state_snapshots"
}

// SQLiteSnapshots stores the state as one JSON document in the local SQLite
// database, the durable stand-in for browser local storage.
type SQLiteSnapshots struct {
	db   *gorm.DB
	key  string
	logg *logger.Logger
}

// NewSQLiteSnapshots binds a snapshot store to the given gorm DB and key.
func NewSQLiteSnapshots(db *gorm.DB, key string, logg *logger.Logger) (*SQLiteSnapshots, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if key == "" {
		return nil, fmt.Errorf("snapshot key is required")
	}
	return &SQLiteSnapshots{db: db, key: key, logg: logg}, nil
}

func (s *SQLiteSnapshots) Load(ctx context.Context) (State, error) {
	var row stateSnapshot
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultState(), nil
		}
		return DefaultState(), fmt.Errorf("loading snapshot: %w", err)
	}
	return decodeSnapshot(ctx, []byte(row.Payload), s.logg), nil
}

func (s *SQLiteSnapshots) Save(ctx context.Context, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	row := stateSnapshot{
		Key:       s.key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).
		Error
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
