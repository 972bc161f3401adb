// Package config loads service configuration from flags, environment and an
// optional config file through viper.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GENSEMEN_HTTP_PORT.
const EnvPrefix = "GENSEMEN"

const (
	DriverFirestore = "firestore"
	DriverSpanner   = "spanner"
	DriverMemory    = "memory"

	SourceCollection = "collection"
	SourceAggregate  = "aggregate"
)

type Config struct {
	HTTP     HTTPConfig
	LogLevel slog.Level
	Store    StoreConfig
	Catalog  CatalogConfig
	CORS     []string
	Shutdown time.Duration
}

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	Driver    string
	Firestore FirestoreConfig
	Spanner   SpannerConfig
}

type FirestoreConfig struct {
	ProjectID  string
	DatabaseID string
}

type SpannerConfig struct {
	ProjectID  string
	InstanceID string
	DatabaseID string
}

// CatalogConfig selects where product records are read from.
type CatalogConfig struct {
	// Source is "collection" (one document per product) or "aggregate"
	// (one document holding every product in an array field).
	Source             string
	ProductsCollection string
	AggregateDocument  string
	AggregateField     string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", DriverFirestore)
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.database_id", "")
	v.SetDefault("spanner.project_id", "local-project")
	v.SetDefault("spanner.instance_id", "local-instance")
	v.SetDefault("spanner.database_id", "gensemen")
	v.SetDefault("catalog.source", SourceAggregate)
	v.SetDefault("catalog.products_collection", "toros")
	v.SetDefault("catalog.aggregate_document", "gensemen/toros")
	v.SetDefault("catalog.aggregate_field", "data")
	v.SetDefault("cors.origins", []string{"*"})
	v.SetDefault("shutdown.timeout", 30*time.Second)
}

// BindEnv makes every key readable from GENSEMEN_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v, reading file first when it is set.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	level, err := ParseLevel(v.GetString("log.level"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTP: HTTPConfig{
			Host:         v.GetString("http.host"),
			Port:         v.GetInt("http.port"),
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		LogLevel: level,
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
			Firestore: FirestoreConfig{
				ProjectID:  v.GetString("firestore.project_id"),
				DatabaseID: v.GetString("firestore.database_id"),
			},
			Spanner: SpannerConfig{
				ProjectID:  v.GetString("spanner.project_id"),
				InstanceID: v.GetString("spanner.instance_id"),
				DatabaseID: v.GetString("spanner.database_id"),
			},
		},
		Catalog: CatalogConfig{
			Source:             strings.ToLower(v.GetString("catalog.source")),
			ProductsCollection: v.GetString("catalog.products_collection"),
			AggregateDocument:  v.GetString("catalog.aggregate_document"),
			AggregateField:     v.GetString("catalog.aggregate_field"),
		},
		CORS:     v.GetStringSlice("cors.origins"),
		Shutdown: v.GetDuration("shutdown.timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and required fields.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFirestore:
		if c.Store.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.project_id is required for the firestore driver")
		}
	case DriverSpanner, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}

	switch c.Catalog.Source {
	case SourceCollection:
		if c.Catalog.ProductsCollection == "" {
			return fmt.Errorf("catalog.products_collection is required")
		}
	case SourceAggregate:
		if _, _, ok := c.Catalog.AggregateRef(); !ok {
			return fmt.Errorf("catalog.aggregate_document must look like collection/document, got %q", c.Catalog.AggregateDocument)
		}
	default:
		return fmt.Errorf("unknown catalog source: %q", c.Catalog.Source)
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port: %d", c.HTTP.Port)
	}
	return nil
}

// AggregateRef splits AggregateDocument into collection and document id.
func (c CatalogConfig) AggregateRef() (collection, id string, ok bool) {
	collection, id, ok = strings.Cut(c.AggregateDocument, "/")
	if !ok || collection == "" || id == "" || strings.Contains(id, "/") {
		return "", "", false
	}
	return collection, id, true
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %q", s)
}
