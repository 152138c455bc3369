package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ストレージドライバ
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"EMPLIST_LISTEN_ADDR"`
}

// StorageConfig は社員一覧の永続化スロットに関する設定です。
type StorageConfig struct {
	Driver     string `yaml:"driver" env:"EMPLIST_STORAGE_DRIVER"`
	Key        string `yaml:"key" env:"EMPLIST_STORAGE_KEY"`
	Dir        string `yaml:"dir" env:"EMPLIST_STORAGE_DIR"`
	SQLitePath string `yaml:"sqlite_path" env:"EMPLIST_SQLITE_PATH"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。driver が postgres のときのみ必須です。
type DatabaseConfig struct {
	Host               string        `yaml:"host" env:"EMPLIST_DB_HOST"`
	Port               int           `yaml:"port" env:"EMPLIST_DB_PORT"`
	User               string        `yaml:"user" env:"EMPLIST_DB_USER"`
	Password           string        `yaml:"password" env:"EMPLIST_DB_PASSWORD"`
	Name               string        `yaml:"name" env:"EMPLIST_DB_NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"EMPLIST_DB_SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	// TxIsolation はスロット書き込みの分離レベルです（空ならサーバー既定）。
	TxIsolation string `yaml:"tx_isolation" env:"EMPLIST_DB_TX_ISOLATION"`
	// TxMaxRetries は直列化失敗時の再試行回数です。nil なら既定値を使います。
	TxMaxRetries *int `yaml:"tx_max_retries"`
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level       string `yaml:"level" env:"EMPLIST_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"EMPLIST_LOG_DEVELOPMENT"`
}

// TracingConfig は OpenTelemetry の設定です。Endpoint が空ならトレースは無効です。
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint" env:"EMPLIST_OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"EMPLIST_OTEL_SERVICE_NAME"`
}

// Load は指定されたパスから設定ファイルを読み込み、.env と環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default はファイル無しで使う設定（ファイルスロット）を返します。
func Default() *Config {
	cfg := &Config{}
	_ = cfg.validateAndNormalize()
	return cfg
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load .env: %w", err)
	}
	return nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":50051"
	}
	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		return fmt.Errorf("config: server.listen_addr: %w", err)
	}

	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	if c.Storage.Driver == DriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		return fmt.Errorf("config: log.level %q is not supported", c.Log.Level)
	}

	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "employee-list"
	}

	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = DriverFile
	}

	switch s.Driver {
	case DriverMemory, DriverPostgres:
	case DriverFile:
		if s.Dir == "" {
			s.Dir = "data"
		}
	case DriverSQLite:
		if s.SQLitePath == "" {
			s.SQLitePath = "data/employees.db"
		}
	default:
		return fmt.Errorf("config: storage.driver %q is not supported", s.Driver)
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	d.TxIsolation = strings.ToLower(strings.TrimSpace(d.TxIsolation))
	switch d.TxIsolation {
	case "", "read committed", "repeatable read", "serializable":
	default:
		return fmt.Errorf("config: database.tx_isolation %q is not supported", d.TxIsolation)
	}
	if d.TxMaxRetries != nil && *d.TxMaxRetries < 0 {
		return fmt.Errorf("config: database.tx_max_retries must not be negative")
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
