package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix            = "CRAGBOOK"
	defaultHTTPAddress   = "0.0.0.0:8080"
	defaultLogLevel      = "info"
	defaultTimezone      = "UTC"
	defaultMigrationsDir = "./migrations"
	defaultTokenTTL      = time.Hour
	DefaultDotEnvPath    = "./configs/.env"
)

type PostgresConfig struct {
	Address  string
	Username string
	Password string
	DB       string
}

// AppConfig is everything cmd/api needs to start serving.
type AppConfig struct {
	HTTPAddress   string
	LogLevel      string
	Postgres      PostgresConfig
	JWTSecret     string
	TokenTTL      time.Duration
	Location      *time.Location
	MigrationsDir string
}

// LoadDotEnv exports variables from the .env files into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotEnvPath}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.New("loading envs error: " + err.Error())
		}
	}
	return nil
}

func NewViper() *viper.Viper {
	v := viper.New()
	ApplyDefaults(v)
	return v
}

// ApplyDefaults binds CRAGBOOK_* variables and sets defaults on v.
func ApplyDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.address", defaultHTTPAddress)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("timezone", defaultTimezone)
	v.SetDefault("migrations.dir", defaultMigrationsDir)
	v.SetDefault("jwt.ttl", defaultTokenTTL)
	// Registered so AutomaticEnv can see them
	v.SetDefault("postgres.address", "")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("jwt.secret", "")
}

func Load(v *viper.Viper) (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddress: v.GetString("http.address"),
		LogLevel:    v.GetString("log.level"),
		Postgres: PostgresConfig{
			Address:  v.GetString("postgres.address"),
			Username: v.GetString("postgres.user"),
			Password: v.GetString("postgres.password"),
			DB:       v.GetString("postgres.db"),
		},
		JWTSecret:     v.GetString("jwt.secret"),
		TokenTTL:      v.GetDuration("jwt.ttl"),
		MigrationsDir: v.GetString("migrations.dir"),
	}
	loc, err := time.LoadLocation(strings.TrimSpace(v.GetString("timezone")))
	if err != nil {
		return AppConfig{}, errors.New("timezone is invalid: " + err.Error())
	}
	cfg.Location = loc

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// LoadDatabase reads only the keys the migrate command needs.
func LoadDatabase(v *viper.Viper) (PostgresConfig, string, error) {
	pg := PostgresConfig{
		Address:  v.GetString("postgres.address"),
		Username: v.GetString("postgres.user"),
		Password: v.GetString("postgres.password"),
		DB:       v.GetString("postgres.db"),
	}
	if err := pg.validate(); err != nil {
		return PostgresConfig{}, "", err
	}
	return pg, v.GetString("migrations.dir"), nil
}

func (c AppConfig) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("jwt.secret is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("jwt.ttl must be positive")
	}
	if strings.TrimSpace(c.HTTPAddress) == "" {
		return errors.New("http.address is required")
	}
	return c.Postgres.validate()
}

func (c PostgresConfig) validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return errors.New("postgres.address is required")
	}
	if strings.TrimSpace(c.DB) == "" {
		return errors.New("postgres.db is required")
	}
	return nil
}
