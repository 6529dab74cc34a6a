package postgres

import (
	"database/sql"
	"fmt"
	"net/url"

	"courierdesk/internal/adapters/out/postgres/clientrepo"
	"courierdesk/internal/adapters/out/postgres/courierrepo"
	"courierdesk/internal/adapters/out/postgres/historyrepo"
	"courierdesk/internal/adapters/out/postgres/orderrepo"
	"courierdesk/internal/adapters/out/postgres/userrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a lib/pq connection URL.
func DSN(host string, port int, user, password, name, sslMode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     fmt.Sprintf("%s:%d", host, port),
		Path:     name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects through the lib/pq driver and wraps the pool in GORM.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table used by the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&historyrepo.RecordDTO{},
		&userrepo.UserDTO{},
	)
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
