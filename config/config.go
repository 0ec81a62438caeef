package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"todo/shared/validator"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development" validate:"oneof=development production"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080" validate:"required"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5" validate:"gte=0"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"5" validate:"gte=0"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"todo"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"100" validate:"gte=1"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60" validate:"gte=1"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Mongo struct {
			URI                 string `envconfig:"URI" default:"mongodb://localhost:27017" validate:"required"`
			Database            string `envconfig:"DATABASE" default:"todo" validate:"required"`
			MigrationCollection string `envconfig:"MIGRATION_COLLECTION" default:"schema_migrations"`
			AutoMigrate         bool   `envconfig:"AUTO_MIGRATE" default:"true"`
			MaxRetry            int    `envconfig:"MAX_RETRY" default:"3" validate:"gte=1"`
			RetryWaitTime       int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			TimeoutSeconds      int    `envconfig:"TIMEOUT_SECONDS" default:"10" validate:"gte=1"`
		} `envconfig:"MONGO"`
	} `envconfig:"DB"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS" default:"localhost:9092"`
		Topic   string   `envconfig:"TOPIC" default:"todo-events"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			err = fmt.Errorf("processing environment variables: %w", err)

			return
		}

		err = Validate(&conf)
		if err != nil {
			return
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	return err
}

// Validate checks the loaded configuration against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
