package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultRadiusMeters       = 5000
	defaultMaxRadiusMeters    = 50000
	defaultGridCellSizeKm     = 1.0
	defaultQueryTimeout       = 5 * time.Second
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultTokenTTL           = 24 * time.Hour
	defaultCookieName         = "session"
	defaultMinPassword        = 10
	defaultMaxUsername        = 25
	defaultCacheTTL           = time.Minute

	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	StrategyDatabase = "database"
	StrategyIndex    = "index"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins feeds the CORS middleware; empty means any origin.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordPolicy *PasswordPolicyConfig `json:"passwordPolicy" yaml:"passwordPolicy"`

	Proximity *ProximityConfig `json:"proximity" yaml:"proximity"`

	Store *StoreConfig `json:"store" yaml:"store"`

	// Cache configuration for the nearby-query result cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for visit event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure   bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

// PasswordPolicyConfig defines registration requirements
type PasswordPolicyConfig struct {
	MinLength         int `json:"minLength" yaml:"minLength"`
	MaxUsernameLength int `json:"maxUsernameLength" yaml:"maxUsernameLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ProximityConfig controls radius queries over the location catalog
type ProximityConfig struct {
	DefaultRadiusMeters float64 `json:"defaultRadiusMeters" yaml:"defaultRadiusMeters"`
	MaxRadiusMeters     float64 `json:"maxRadiusMeters" yaml:"maxRadiusMeters"`

	// Strategy is "database" (PostGIS ST_DWithin) or "index" (in-process grid index)
	Strategy string `json:"strategy" yaml:"strategy"`

	// Grid cell size in kilometers for the in-process spatial index
	GridCellSizeKm float64 `json:"gridCellSizeKm" yaml:"gridCellSizeKm"`
}

// StoreConfig selects and tunes the persistence backend
type StoreConfig struct {
	// Driver is "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// QueryTimeout bounds every store round trip issued by a request
	QueryTimeout time.Duration `json:"queryTimeout" yaml:"queryTimeout"`

	// SlowQueryThreshold is the elapsed time above which GORM logs a query as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// AutoMigrate applies embedded migrations when the server starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Seed source for the catalog, opened through gocloud blob (file://, gs://)
	SeedBucket string `json:"seedBucket" yaml:"seedBucket"`
	SeedKey    string `json:"seedKey" yaml:"seedKey"`
}

// CacheConfig defines the valkey connection for cached nearby results
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Address string        `json:"address" yaml:"address"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Service account key file (for google provider); empty uses application default credentials
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads and validates the server configuration.
func New() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads config.yaml with defaults applied but skips server-only validation.
// The migrate and seed commands only need the postgres section.
func Load() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every unset section and field with its default value.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultTokenTTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}

	if cfg.PasswordPolicy == nil {
		cfg.PasswordPolicy = &PasswordPolicyConfig{}
	}
	if cfg.PasswordPolicy.MinLength <= 0 {
		cfg.PasswordPolicy.MinLength = defaultMinPassword
	}
	if cfg.PasswordPolicy.MaxUsernameLength <= 0 {
		cfg.PasswordPolicy.MaxUsernameLength = defaultMaxUsername
	}

	if cfg.Proximity == nil {
		cfg.Proximity = &ProximityConfig{}
	}
	if cfg.Proximity.DefaultRadiusMeters <= 0 {
		cfg.Proximity.DefaultRadiusMeters = defaultRadiusMeters
	}
	if cfg.Proximity.MaxRadiusMeters <= 0 {
		cfg.Proximity.MaxRadiusMeters = defaultMaxRadiusMeters
	}
	if cfg.Proximity.Strategy == "" {
		cfg.Proximity.Strategy = StrategyDatabase
	}
	if cfg.Proximity.GridCellSizeKm <= 0 {
		cfg.Proximity.GridCellSizeKm = defaultGridCellSizeKm
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverPostgres
	}
	if cfg.Store.QueryTimeout <= 0 {
		cfg.Store.QueryTimeout = defaultQueryTimeout
	}
	if cfg.Store.SlowQueryThreshold <= 0 {
		cfg.Store.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
}

// Validate rejects combinations the server cannot start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access is required")
	}

	switch cfg.Store.Driver {
	case StoreDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres config is required for the postgres store driver")
		}
	case StoreDriverMemory:
		if cfg.Proximity.Strategy == StrategyDatabase {
			// the memory driver has no database to push the radius query into
			cfg.Proximity.Strategy = StrategyIndex
		}
	default:
		return errors.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	switch cfg.Proximity.Strategy {
	case StrategyDatabase, StrategyIndex:
	default:
		return errors.Errorf("unknown proximity strategy %q", cfg.Proximity.Strategy)
	}

	if cfg.Proximity.DefaultRadiusMeters > cfg.Proximity.MaxRadiusMeters {
		return errors.Errorf("proximity.defaultRadiusMeters (%v) exceeds proximity.maxRadiusMeters (%v)",
			cfg.Proximity.DefaultRadiusMeters, cfg.Proximity.MaxRadiusMeters)
	}

	if cfg.Cache.Enabled && strings.TrimSpace(cfg.Cache.Address) == "" {
		return errors.New("cache.address is required when the cache is enabled")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
