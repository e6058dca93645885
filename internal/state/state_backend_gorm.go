package state

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one stored blob in postgres.
type Snapshot struct {
	Key       string    `gorm:"column:state_key;type:varchar(100);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Snapshot) TableName() string {
	return "app_states"
}

type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (g *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var row Snapshot
	err := g.db.WithContext(ctx).
		Where("state_key = ?", key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Value), nil
}

func (g *GormBackend) Set(ctx context.Context, key string, value []byte) error {
	row := Snapshot{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "state_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (g *GormBackend) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).
		Where("state_key = ?", key).
		Delete(&Snapshot{}).Error
}
