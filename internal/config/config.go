package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Leave     LeaveConfig     `mapstructure:"leave"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type AppConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RunMigrations   bool          `mapstructure:"run_migrations"`
	RBACPolicyFile  string        `mapstructure:"rbac_policy_file"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type KafkaConfig struct {
	Broker        string        `mapstructure:"broker"`
	ConsumerGroup string        `mapstructure:"consumer_group"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	MaxRetries    int           `mapstructure:"max_retries"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LeaveConfig holds the quota defaults handed to the ledger and the
// listing limits of the leave request store.
type LeaveConfig struct {
	DefaultPaidDays  int           `mapstructure:"default_paid_days"`
	DefaultSickDays  int           `mapstructure:"default_sick_days"`
	ManagerCacheTTL  time.Duration `mapstructure:"manager_cache_ttl"`
	DefaultPageLimit int           `mapstructure:"default_page_limit"`
	MaxPageLimit     int           `mapstructure:"max_page_limit"`
}

type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// Load reads configuration from the environment (DB_HOST, LEAVE_DEFAULT_PAID_DAYS, ...)
// and an optional config file. Environment wins over the file, the file over defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Leave.DefaultPaidDays < 0 || c.Leave.DefaultSickDays < 0 {
		return fmt.Errorf("leave quota defaults must not be negative")
	}
	if c.Leave.DefaultPageLimit <= 0 || c.Leave.MaxPageLimit < c.Leave.DefaultPageLimit {
		return fmt.Errorf("invalid leave page limits: default=%d max=%d", c.Leave.DefaultPageLimit, c.Leave.MaxPageLimit)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.read_timeout", 5*time.Second)
	v.SetDefault("app.write_timeout", 10*time.Second)
	v.SetDefault("app.idle_timeout", 60*time.Second)
	v.SetDefault("app.shutdown_timeout", 10*time.Second)
	v.SetDefault("app.run_migrations", true)
	v.SetDefault("app.rbac_policy_file", "")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "hrms")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.max_retries", 5)

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.consumer_group", "go-hrms-leave-quota")
	v.SetDefault("kafka.poll_interval", 3*time.Second)
	v.SetDefault("kafka.max_retries", 5)

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("leave.default_paid_days", 10)
	v.SetDefault("leave.default_sick_days", 5)
	v.SetDefault("leave.manager_cache_ttl", time.Minute)
	v.SetDefault("leave.default_page_limit", 50)
	v.SetDefault("leave.max_page_limit", 500)

	v.SetDefault("rate_limit.per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
}
