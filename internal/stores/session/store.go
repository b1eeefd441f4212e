package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store interface defines methods for session storage
type Store interface {
	CreateSession(ctx context.Context, userID string, expireDate time.Time) (*Session, error)

	// CountExpired returns the number of sessions expired as of now
	CountExpired(ctx context.Context, now time.Time) (int64, error)

	// DeleteExpired removes all sessions expired as of now and returns the
	// number removed
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// CountActive returns the number of sessions still valid as of now
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// MySqlStore handles session persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new session store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &MySqlStore{db: db}

	// Auto-migrate tables
	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// CreateSession creates a new session in the database
func (s *MySqlStore) CreateSession(ctx context.Context, userID string, expireDate time.Time) (*Session, error) {
	session := &Session{
		ID:         uuid.New(),
		UserID:     userID,
		ExpireDate: expireDate,
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// CountExpired returns the number of sessions expired as of now
func (s *MySqlStore) CountExpired(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Session{}).Where("expire_date < ?", now).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expired sessions: %w", err)
	}
	return count, nil
}

// DeleteExpired removes all expired sessions and returns the number removed
func (s *MySqlStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expire_date < ?", now).Delete(&Session{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountActive returns the number of sessions still valid as of now
func (s *MySqlStore) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Session{}).Where("expire_date >= ?", now).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}
