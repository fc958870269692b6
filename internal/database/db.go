package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Inspector answers the questions asked by the /test diagnostic.
type Inspector interface {
	Name() string
	Tables() ([]string, error)
}

// Postgres is an Inspector backed by a gorm connection.
type Postgres struct {
	DB *gorm.DB
}

// Connect opens a Postgres connection for diagnostics. The proxy itself
// never stores anything, so no migrations are run.
func Connect(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &Postgres{DB: db}, nil
}

// Name returns the current database name.
func (p *Postgres) Name() string {
	return p.DB.Migrator().CurrentDatabase()
}

func (p *Postgres) Tables() ([]string, error) {
	return p.DB.Migrator().GetTables()
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
