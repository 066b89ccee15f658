// Package pgstore is the PostgreSQL implementation of models.Store, built on
// GORM with lib/pq as the database/sql driver.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ressit/ressit-pos-api/models"
)

// uniqueViolation is the SQLSTATE PostgreSQL reports for duplicate keys.
const uniqueViolation = "23505"

type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type table[T any] struct {
	db *gorm.DB
}

func (t *table[T]) MaxID(ctx context.Context) (int, error) {
	var maxID int
	if err := t.db.WithContext(ctx).
		Model(new(T)).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return maxID, nil
}

func (t *table[T]) Insert(ctx context.Context, doc *T) error {
	if err := t.db.WithContext(ctx).Create(doc).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", models.ErrDuplicateID, err)
		}
		return err
	}
	return nil
}

func (t *table[T]) FindAll(ctx context.Context) ([]T, error) {
	docs := []T{}
	if err := t.db.WithContext(ctx).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (t *table[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var doc T
	if err := t.db.WithContext(ctx).
		Where("id = ?", id).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (t *table[T]) FindFirst(ctx context.Context) (*T, error) {
	var doc T
	if err := t.db.WithContext(ctx).Order("id").First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Replace writes every column, zero values included, so an update never
// merges with the stored row.
func (t *table[T]) Replace(ctx context.Context, id int, doc *T) error {
	res := t.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Updates(doc)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (t *table[T]) Delete(ctx context.Context, id int) error {
	res := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Store keeps all five collections as PostgreSQL tables.
type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open connects through lib/pq, hands the pool to GORM and migrates the
// schema.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.Settings{},
	); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("postgres schema migrated")

	return &Store{db: db, sqlDB: sqlDB}, nil
}

func (s *Store) Admins() models.Collection[models.Admin] {
	return &table[models.Admin]{db: s.db}
}

func (s *Store) Categories() models.Collection[models.Category] {
	return &table[models.Category]{db: s.db}
}

func (s *Store) Products() models.Collection[models.Product] {
	return &table[models.Product]{db: s.db}
}

func (s *Store) Orders() models.Collection[models.Order] {
	return &table[models.Order]{db: s.db}
}

func (s *Store) Settings() models.Collection[models.Settings] {
	return &table[models.Settings]{db: s.db}
}

func (s *Store) FindAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).
		Where("username = ? AND password_hash = ?", username, passwordHash).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *Store) FindOrdersBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.WithContext(ctx).
		Where("order_date BETWEEN ? AND ?", start, end).
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.sqlDB.Close()
}
