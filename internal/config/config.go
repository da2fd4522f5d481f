// config предоставляет структуру конфигурации news-platform
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env             string                `yaml:"env" env:"ENV" env-default:"local"`
	HTTP            HTTPConfig            `yaml:"http"`
	DB              DBConfig              `yaml:"db"`
	Mongo           MongoConfig           `yaml:"mongo"`
	Redis           RedisConfig           `yaml:"redis"`
	S3              S3Config              `yaml:"s3"`
	Avatar          AvatarConfig          `yaml:"avatar"`
	Auth            AuthConfig            `yaml:"auth"`
	Limits          LimitsConfig          `yaml:"limits"`
	Timeouts        TimeoutConfig         `yaml:"timeouts"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Donations       DonationsConfig       `yaml:"donations"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к PostgreSQL.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MongoConfig — настройки подключения к MongoDB (комментарии).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// RedisConfig — настройки подключения к Redis (эпемерный кэш).
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-required:"true"`
}

// S3Config — настройки S3-совместимого хранилища (аватары).
type S3Config struct {
	Endpoint     string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser     string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket       string        `yaml:"bucket" env:"S3_BUCKET" env-required:"true"`
	PresignTTL   time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	UseSSL       bool          `yaml:"use_ssl" env:"S3_USE_SSL" env-default:"false"`
	// PublicBaseURL — база для формирования публичных ссылок на загруженные объекты.
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// AvatarConfig — ограничения на загрузку аватаров.
type AvatarConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"AVATAR_MAX_SIZE_BYTES" env-default:"5242880"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"AVATAR_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	Issuer         string        `yaml:"issuer"   env:"ISSUER" env-default:"news-platform"`
	Audience       []string      `yaml:"audience" env:"AUDIENCE" env-default:"news-platform"`
}

// LimitsConfig — серверные лимиты на выдачу списков.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	// Cache — отдельный (короткий) таймаут обращений к эпемерному кэшу:
	// его недоступность не должна задерживать запрос надолго.
	Cache time.Duration `yaml:"cache" env:"CACHE_TIMEOUT" env-default:"300ms"`
}

// RecommendationsConfig — параметры резолвера рекомендаций.
type RecommendationsConfig struct {
	// MemoTTL — срок жизни мемоизированного ответа в Redis.
	MemoTTL time.Duration `yaml:"memo_ttl" env:"RECS_MEMO_TTL" env-default:"1h"`
	// FallbackTTL — горизонт expires_at для trending-fallback ответа.
	FallbackTTL time.Duration `yaml:"fallback_ttl" env:"RECS_FALLBACK_TTL" env-default:"1h"`
}

// DonationsConfig — параметры NFT-донатов.
type DonationsConfig struct {
	// PlatformFeeBPS — комиссия платформы в базисных пунктах (10000 = 100%).
	PlatformFeeBPS int64 `yaml:"platform_fee_bps" env:"PLATFORM_FEE_BPS" env-default:"250"`
	// TokenContract — адрес NFT-контракта.
	TokenContract string `yaml:"token_contract" env:"FUSE_TOKEN_CONTRACT" env-default:"0x59d3631c86BbE35EF041872d502F218A39FBa150"`
	// ManagerContract — адрес контракта менеджера донатов.
	ManagerContract string `yaml:"manager_contract" env:"DONATION_MANAGER_CONTRACT" env-default:"0x0290FB167208Af455bB137780163b7B7a9a10C16"`
	// ConfirmDelay — задержка фонового подтверждения транзакции.
	ConfirmDelay time.Duration `yaml:"confirm_delay" env:"DONATION_CONFIRM_DELAY" env-default:"5s"`
	Currency     string        `yaml:"currency" env:"DONATION_CURRENCY" env-default:"ETH"`
	Network      string        `yaml:"network" env:"DONATION_NETWORK" env-default:"ethereum"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo.url is required")
	}
	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if c.Recommendations.MemoTTL <= 0 {
		return fmt.Errorf("recommendations.memo_ttl must be > 0")
	}
	if c.Recommendations.FallbackTTL <= 0 {
		return fmt.Errorf("recommendations.fallback_ttl must be > 0")
	}
	if c.Donations.PlatformFeeBPS < 0 || c.Donations.PlatformFeeBPS > 10000 {
		return fmt.Errorf("donations.platform_fee_bps must be in [0, 10000]")
	}
	if c.Avatar.MaxSizeBytes < 0 {
		return fmt.Errorf("avatar.max_size_bytes must be >= 0")
	}
	return nil
}
