package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	appenv "github.com/optouthub/optouthub-go/internal/env"
)

// Config is the webhook receiver's environment-driven configuration.
type Config struct {
	Port    string             `env:"PORT" envDefault:"8080"`
	Env     appenv.Environment `env:"ENV" envDefault:"development"`
	Webhook Webhook            `envPrefix:"WEBHOOK_"`

	// Exactly one delivery store backs the receiver: postgres when
	// POSTGRES_URL is set, otherwise redis when REDIS_URL is set,
	// otherwise in-memory.
	Redis    Redis    `envPrefix:"REDIS_"`
	Postgres Postgres `envPrefix:"POSTGRES_"`
}

type Webhook struct {
	Secret string        `env:"SECRET,required"`
	MaxAge time.Duration `env:"MAX_AGE" envDefault:"5m"`
}

type Redis struct {
	URL string `env:"URL"`
}

type Postgres struct {
	URL string `env:"URL"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
