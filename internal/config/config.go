package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	TMDB     TMDBConfig
	TVMaze   TVMazeConfig
	MinIO    MinIOConfig
	Log      LogConfig
	Club     ClubConfig
	Refresh  RefreshConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string // postgres or sqlite
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type TMDBConfig struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	HTTPTimeout  time.Duration
}

type TVMazeConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

// Enabled reports whether poster storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// CoupleGroup is one household pair of reviewers.
type CoupleGroup struct {
	Slug    string
	Name    string
	Members []string
}

type ClubConfig struct {
	Couples       []CoupleGroup
	FallbackGroup string
}

type RefreshConfig struct {
	Delay time.Duration
}

const defaultCouples = "tt:TrevorTaylor:trevor,taylor;" +
	"mn:MarissaNathan:marissa,nathan;" +
	"sb:SierraBenett:sierra,benett;" +
	"mom_dad:MomDad:rob,terry;" +
	"ml:MiaLogan:mia,logan"

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnvOrDefault("DB_DRIVER", "postgres"),
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "movieclub"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			SQLitePath:      getEnvOrDefault("DB_SQLITE_PATH", "movieclub.db"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		TMDB: TMDBConfig{
			APIKey:       os.Getenv("TMDB_API_KEY"),
			BaseURL:      getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			ImageBaseURL: getEnvOrDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500"),
			Language:     getEnvOrDefault("TMDB_LANGUAGE", "en-US"),
			HTTPTimeout:  getDurationOrDefault("TMDB_HTTP_TIMEOUT", 15*time.Second),
		},
		TVMaze: TVMazeConfig{
			BaseURL:     getEnvOrDefault("TVMAZE_BASE_URL", "https://api.tvmaze.com"),
			HTTPTimeout: getDurationOrDefault("TVMAZE_HTTP_TIMEOUT", 15*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "posters"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       getEnvOrDefault("AWS_URL", ""),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getIntOrDefault("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getIntOrDefault("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getIntOrDefault("LOG_MAX_AGE_DAYS", 28),
			Compress:   getBoolOrDefault("LOG_COMPRESS", true),
		},
		Club: ClubConfig{
			Couples:       mustParseCouples(getEnvOrDefault("CLUB_COUPLES", defaultCouples)),
			FallbackGroup: getEnvOrDefault("CLUB_FALLBACK_GROUP", "uncategorized"),
		},
		Refresh: RefreshConfig{
			Delay: getDurationOrDefault("REFRESH_DELAY", 250*time.Millisecond),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return c.Database.PostgresDSN()
}

func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.Port,
		d.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required for movie import")
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if len(c.Club.Couples) == 0 {
		return fmt.Errorf("CLUB_COUPLES defines no couples")
	}
	if !c.MinIO.Enabled() {
		return fmt.Errorf("AWS_ENDPOINT/AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY not set, poster uploads disabled")
	}
	return nil
}

// ParseCouples reads "slug:Group:member1,member2;..." definitions.
func ParseCouples(raw string) ([]CoupleGroup, error) {
	var groups []CoupleGroup
	seen := make(map[string]bool)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid couple definition %q", entry)
		}
		slug := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if slug == "" || name == "" {
			return nil, fmt.Errorf("invalid couple definition %q", entry)
		}
		if seen[slug] {
			return nil, fmt.Errorf("duplicate couple slug %q", slug)
		}
		seen[slug] = true

		var members []string
		for _, m := range strings.Split(parts[2], ",") {
			if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
				members = append(members, m)
			}
		}
		groups = append(groups, CoupleGroup{Slug: slug, Name: name, Members: members})
	}
	return groups, nil
}

func mustParseCouples(raw string) []CoupleGroup {
	groups, err := ParseCouples(raw)
	if err != nil {
		groups, _ = ParseCouples(defaultCouples)
	}
	return groups
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
