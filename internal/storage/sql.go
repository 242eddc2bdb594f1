package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/salesboard/pkg/db"
	"github.com/angelmondragon/salesboard/pkg/db/models"
)

var timeNowUTC = func() time.Time { return time.Now().UTC() }

// SQLStore keeps documents in the documents table created by pkg/migrate.
type SQLStore struct {
	client *db.Client
}

func NewSQLStore(client *db.Client) (*SQLStore, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	return &SQLStore{client: client}, nil
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc models.Document
	err := s.client.WithContext(ctx).
		Where("name = ?", key).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", key, err)
	}
	return []byte(doc.Body), nil
}

func (s *SQLStore) Save(ctx context.Context, key string, body []byte) error {
	doc := models.Document{
		Name:      key,
		Body:      string(body),
		UpdatedAt: timeNowUTC(),
	}
	err := s.client.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
