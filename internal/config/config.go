package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var (
	cfg     *APIConfig
	loadErr error
	once    sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	DB             DBConfig             `xml:"DB"`
	Logging        LoggingConfig        `xml:"LOGGING"`
	RateLimit      RateLimitConfig      `xml:"RATE_LIMIT"`
	Report         ReportConfig         `xml:"REPORT"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port      int    `xml:"PORT"`
	Host      string `xml:"HOST"`
	TimeZone  string `xml:"TIME_ZONE"`
	EnableH2C bool   `xml:"ENABLE_H2C"`
}

// AuthenticationConfig holds token settings.
type AuthenticationConfig struct {
	AccessSecret     string `xml:"ACCESS_SECRET"`
	RefreshSecret    string `xml:"REFRESH_SECRET"`
	AccessTTLMinutes int    `xml:"ACCESS_TTL_MINUTES"`
	RefreshTTLHours  int    `xml:"REFRESH_TTL_HOURS"`
	AdminEmail       string `xml:"ADMIN_EMAIL"`
	AdminPassword    string `xml:"ADMIN_PASSWORD"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	SSLMode    string       `xml:"SSL_MODE"`
	Name       string       `xml:"NAME"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// LoggingConfig holds log output and rotation settings.
type LoggingConfig struct {
	Dir        string `xml:"DIR"`
	Level      string `xml:"LEVEL"`
	MaxSizeMB  int    `xml:"MAX_SIZE_MB"`
	MaxBackups int    `xml:"MAX_BACKUPS"`
	MaxAgeDays int    `xml:"MAX_AGE_DAYS"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled           bool    `xml:"ENABLED,attr"`
	RequestsPerSecond float64 `xml:"REQUESTS_PER_SECOND"`
	Burst             int     `xml:"BURST"`
}

// ReportConfig holds settings for rendered reports.
type ReportConfig struct {
	Municipality string `xml:"MUNICIPALITY"`
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN(timeZone string) string {
	if timeZone == "" {
		timeZone = "UTC"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.Host, c.Username, c.Password.Value, c.Name, c.Port, c.SSLMode, timeZone)
}

// Parse decodes an XML document and fills in defaults.
func Parse(data []byte) (*APIConfig, error) {
	var c APIConfig
	if err := xml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *APIConfig) applyDefaults() {
	if c.Context.Host == "" {
		c.Context.Host = "0.0.0.0"
	}
	if c.Context.Port == 0 {
		c.Context.Port = 8080
	}
	if c.Authentication.AccessTTLMinutes == 0 {
		c.Authentication.AccessTTLMinutes = 15
	}
	if c.Authentication.RefreshTTLHours == 0 {
		c.Authentication.RefreshTTLHours = 24 * 7
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if c.Report.Municipality == "" {
		c.Report.Municipality = "Município"
	}
}

// ApplyEnv overrides secrets and connection settings from the environment.
func (c *APIConfig) ApplyEnv() {
	if v := os.Getenv("ESG_JWT_ACCESS_SECRET"); v != "" {
		c.Authentication.AccessSecret = v
	}
	if v := os.Getenv("ESG_JWT_REFRESH_SECRET"); v != "" {
		c.Authentication.RefreshSecret = v
	}
	if v := os.Getenv("ESG_ADMIN_EMAIL"); v != "" {
		c.Authentication.AdminEmail = v
	}
	if v := os.Getenv("ESG_ADMIN_PASSWORD"); v != "" {
		c.Authentication.AdminPassword = v
	}
	if v := os.Getenv("ESG_DB_HOST"); v != "" {
		c.DB.Host = v
	}
	if v := os.Getenv("ESG_DB_PASSWORD"); v != "" {
		c.DB.Password.Value = v
	}
	if v := os.Getenv("ESG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Context.Port = port
		}
	}
}

// ErrWeakSecrets reports missing or shared token signing secrets.
var ErrWeakSecrets = errors.New("access and refresh secrets must be set and differ")

// Validate rejects settings the server cannot run safely with. Equal secrets
// would let a refresh token pass as an access token.
func (c *APIConfig) Validate() error {
	auth := c.Authentication
	if auth.AccessSecret == "" || auth.RefreshSecret == "" || auth.AccessSecret == auth.RefreshSecret {
		return ErrWeakSecrets
	}
	return nil
}

// LoadConfig loads and parses the XML configuration from the given file,
// then applies overrides from .env and the process environment. Only the
// first call reads the file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		// A missing .env is fine; real deployments set variables directly.
		_ = godotenv.Load()
		cfg, loadErr = load(xmlPath)
	})

	if cfg == nil {
		if loadErr == nil {
			loadErr = os.ErrInvalid
		}
		return nil, loadErr
	}
	return cfg, nil
}

func load(xmlPath string) (*APIConfig, error) {
	f, err := os.Open(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	newCfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	newCfg.ApplyEnv()
	if err := newCfg.Validate(); err != nil {
		return nil, err
	}
	return newCfg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
