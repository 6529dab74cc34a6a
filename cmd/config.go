package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"courierdesk/internal/adapters/out/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Config is read from the environment, optionally seeded from a .env file.
// Database settings are required only for the postgres driver.
type Config struct {
	Env           string `validate:"required,oneof=development production"`
	StorageDriver string `validate:"required,oneof=json postgres"`
	SnapshotPath  string `validate:"required_if=StorageDriver json"`

	DBHost     string `validate:"required_if=StorageDriver postgres"`
	DBPort     int    `validate:"required_if=StorageDriver postgres,gte=0,lte=65535"`
	DBUser     string `validate:"required_if=StorageDriver postgres"`
	DBPassword string
	DBName     string `validate:"required_if=StorageDriver postgres"`
	DBSslMode  string `validate:"omitempty,oneof=disable require verify-ca verify-full"`

	BackupDir      string `validate:"required"`
	BackupSchedule string `validate:"required,cronspec"`
	ReportSchedule string `validate:"required,cronspec"`
}

// LoadConfig loads envFile when it exists and reads the configuration from
// the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		Env:           env("ENV", "development"),
		StorageDriver: env("STORAGE_DRIVER", DriverJSON),
		SnapshotPath:  env("SNAPSHOT_PATH", "data/BaseDeDatos.json"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     envInt("DB_PORT", 5432),
		DBUser:     env("DB_USER", ""),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "courierdesk"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		BackupDir:      env("BACKUP_DIR", "data/backups"),
		BackupSchedule: env("BACKUP_SCHEDULE", "@hourly"),
		ReportSchedule: env("REPORT_SCHEDULE", "@every 15m"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("cronspec", validCronSpec); err != nil {
		return err
	}
	return validate.Struct(c)
}

// DSN is the lib/pq connection URL for the postgres driver.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// validCronSpec accepts what the job scheduler accepts.
func validCronSpec(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}
