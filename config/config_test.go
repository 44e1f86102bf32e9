package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, float64(defaultRadiusMeters), cfg.Proximity.DefaultRadiusMeters)
	assert.Equal(t, float64(defaultMaxRadiusMeters), cfg.Proximity.MaxRadiusMeters)
	assert.Equal(t, StrategyDatabase, cfg.Proximity.Strategy)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, defaultQueryTimeout, cfg.Store.QueryTimeout)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Store.SlowQueryThreshold)
	assert.Equal(t, defaultMinPassword, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, defaultMaxUsername, cfg.PasswordPolicy.MaxUsernameLength)
	assert.Equal(t, defaultCookieName, cfg.Auth.CookieName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "memory driver without postgres",
			mutate: func(cfg *Config) { cfg.Store.Driver = StoreDriverMemory },
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "" },
			wantErr: true,
		},
		{
			name:    "postgres driver without postgres config",
			mutate:  func(cfg *Config) { cfg.Store.Driver = StoreDriverPostgres },
			wantErr: true,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "sqlite" },
			wantErr: true,
		},
		{
			name: "unknown strategy",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverMemory
				cfg.Proximity.Strategy = "quadtree"
			},
			wantErr: true,
		},
		{
			name: "default radius above max",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverMemory
				cfg.Proximity.DefaultRadiusMeters = 10000
				cfg.Proximity.MaxRadiusMeters = 5000
			},
			wantErr: true,
		},
		{
			name: "cache enabled without address",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverMemory
				cfg.Cache.Enabled = true
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SecretKey.Access = "secret"
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_MemoryDriverSwitchesToIndexStrategy(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "secret"
	cfg.ApplyDefaults()
	cfg.Store.Driver = StoreDriverMemory

	require.NoError(t, cfg.Validate())
	assert.Equal(t, StrategyIndex, cfg.Proximity.Strategy)
}
