package config

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	// Driver selects the asset store backend: "sqlite" or "memory".
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"data.sqlite"`
}
