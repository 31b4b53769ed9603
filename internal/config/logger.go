package config

// Level maps directly on log/slog levels: -4 debug, 0 info, 4 warn, 8 error.
type Logger struct {
	Level int `env:"LEVEL" envDefault:"0"`
}
