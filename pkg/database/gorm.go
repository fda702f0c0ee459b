package database

import (
	"log"
	"os"
	"time"

	"markethub-be/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	return nil
}

// NewGormDBFromDSN opens Postgres. SQL is logged at Info level only when verbose.
func NewGormDBFromDSN(dsn string, verbose bool) (*gorm.DB, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(level),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Models lists every table owned by the service, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Store{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// ResetSequences moves the id sequences past rows inserted with explicit ids.
func ResetSequences(db *gorm.DB) error {
	for _, table := range []string{"stores", "products"} {
		stmt := "SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM " + table + "), 0) + 1, false)"
		if err := db.Exec(stmt, table).Error; err != nil {
			return err
		}
	}
	return nil
}
