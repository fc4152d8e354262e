package config

import "time"

// DBConfig contains PostgreSQL connection settings for the analytics database.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"mind"`
	Password string `env:"PASSWORD" envDefault:"mind"`
	Name     string `env:"NAME"     envDefault:"mind_analytics"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production

	// QueryTimeout bounds each dashboard query.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"15s"`
}

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelPort       string   `env:"SENTINEL_PORT"        envDefault:"26379"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig controls caching of platform-wide dashboard aggregates in Redis.
type CacheConfig struct {
	// AggregateTTL is how long faculty, developer and admin datasets stay cached.
	// Zero disables the cache.
	AggregateTTL time.Duration `env:"CACHE_AGGREGATE_TTL" envDefault:"5m"`

	// KeyPrefix namespaces cache keys so several deployments can share a Redis.
	KeyPrefix string `env:"CACHE_KEY_PREFIX" envDefault:"mind:"`
}

// Sanitize clamps negative TTLs to zero (disabled).
func (c *CacheConfig) Sanitize() {
	if c.AggregateTTL < 0 {
		c.AggregateTTL = 0
	}
}

// Enabled reports whether aggregate caching is active.
func (c *CacheConfig) Enabled() bool {
	return c.AggregateTTL > 0
}
