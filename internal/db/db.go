package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

type GormDB struct {
	DB *gorm.DB
}

// Open connects using the named driver: "sqlite" takes a file path, "postgres" a DSN.
func Open(driver, dsn string) (*GormDB, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteDB(dsn)
	case "postgres":
		return NewPostgresDB(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func NewSQLiteDB(path string) (*GormDB, error) {
	return open(sqlite.Open(path))
}

func NewPostgresDB(dsn string) (*GormDB, error) {
	return open(postgres.Open(dsn))
}

func open(dialector gorm.Dialector) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func (f *GormDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w: %w", ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) Exists(ctx context.Context, model any, column string, value any) (bool, error) {
	var count int64
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Model(model).Where(query, value).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("counting records by %q: %w", column, err)
	}
	return count > 0, nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
