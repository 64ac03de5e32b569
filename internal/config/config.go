package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DeliveryFailureLog  = "log"
	DeliveryFailureFail = "fail"

	CodeGeneratorCrypto = "crypto"
	CodeGeneratorHOTP   = "hotp"

	SMSProviderLog = "log"
	SMSProviderSNS = "sns"

	minCodeLength = 4
	maxCodeLength = 9
	minHOTPLength = 6
	maxHOTPLength = 8
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"" env-description:"logging level, debug, info, etc. Empty keeps the env default"`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	SMS        SMSConfig
	Cache      Cache
	Assistant  AssistantConfig
	CORS       CORSConfig
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" env-default:"true" env-description:"apply embedded migrations on api start"`
	SeedDemoProjects   bool          `env:"DB_SEED_DEMO_PROJECTS" env-default:"true"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT                    JWTConfig
	TokenSalt              string        `env:"AUTH_TOKEN_SALT" env-required:"true"`
	VerificationCodeLength int           `env:"AUTH_VERIFICATION_CODE_LENGTH" env-default:"6"`
	VerificationCodeTTL    time.Duration `env:"AUTH_VERIFICATION_CODE_TTL" env-default:"5m"`
	CodeGenerator          string        `env:"AUTH_CODE_GENERATOR" env-default:"crypto" env-description:"one of crypto/hotp"`
	DeliveryFailurePolicy  string        `env:"AUTH_DELIVERY_FAILURE_POLICY" env-default:"log" env-description:"one of log/fail"`
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMSConfig struct {
	Provider        string `env:"SMS_PROVIDER" env-default:"log" env-description:"one of log/sns"`
	Async           bool   `env:"SMS_ASYNC" env-default:"false" env-description:"deliver codes through the asynq worker"`
	SNSRegion       string `env:"SMS_SNS_REGION" env-default:"ap-east-1"`
	MessageTemplate string `env:"SMS_MESSAGE_TEMPLATE" env-default:"Your verification code is %s, valid for %d minutes."`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster/memory"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type AssistantConfig struct {
	Enabled      bool          `env:"ASSISTANT_ENABLED" env-default:"false"`
	BaseURL      string        `env:"ASSISTANT_BASE_URL" env-default:"https://api.openai.com/v1"`
	APIKey       string        `env:"ASSISTANT_API_KEY" env-default:""`
	Model        string        `env:"ASSISTANT_MODEL" env-default:"gpt-4o-mini"`
	SystemPrompt string        `env:"ASSISTANT_SYSTEM_PROMPT" env-default:"你是城市共享愿景的ai助手小成，为你提供专业的地理信息服务"`
	MemorySize   int           `env:"ASSISTANT_MEMORY_SIZE" env-default:"20" env-description:"messages kept per conversation"`
	MemoryTTL    time.Duration `env:"ASSISTANT_MEMORY_TTL" env-default:"24h"`
	Timeout      time.Duration `env:"ASSISTANT_TIMEOUT" env-default:"30s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:8080,http://localhost:5173"`
}

func MustLoad() *Config {
	var cfg Config

	// .env is optional, real environment wins
	_ = godotenv.Load()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	return &cfg
}

// Validate rejects settings that would break the login flow at runtime.
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.VerificationCodeTTL <= 0 {
		errs = append(errs, fmt.Errorf("AUTH_VERIFICATION_CODE_TTL must be positive, got %s", c.Auth.VerificationCodeTTL))
	}
	if c.Auth.VerificationCodeLength < minCodeLength || c.Auth.VerificationCodeLength > maxCodeLength {
		errs = append(errs, fmt.Errorf("AUTH_VERIFICATION_CODE_LENGTH must be within %d..%d, got %d",
			minCodeLength, maxCodeLength, c.Auth.VerificationCodeLength))
	}
	if !oneOf(c.Auth.DeliveryFailurePolicy, DeliveryFailureLog, DeliveryFailureFail) {
		errs = append(errs, fmt.Errorf("AUTH_DELIVERY_FAILURE_POLICY must be log or fail, got %q", c.Auth.DeliveryFailurePolicy))
	}
	if c.Auth.CodeGenerator == CodeGeneratorHOTP &&
		(c.Auth.VerificationCodeLength < minHOTPLength || c.Auth.VerificationCodeLength > maxHOTPLength) {
		errs = append(errs, fmt.Errorf("hotp codes must be %d..%d digits, got %d",
			minHOTPLength, maxHOTPLength, c.Auth.VerificationCodeLength))
	}
	if !oneOf(c.Auth.CodeGenerator, CodeGeneratorCrypto, CodeGeneratorHOTP) {
		errs = append(errs, fmt.Errorf("AUTH_CODE_GENERATOR must be crypto or hotp, got %q", c.Auth.CodeGenerator))
	}
	if !oneOf(c.SMS.Provider, SMSProviderLog, SMSProviderSNS) {
		errs = append(errs, fmt.Errorf("SMS_PROVIDER must be log or sns, got %q", c.SMS.Provider))
	}

	return errors.Join(errs...)
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
