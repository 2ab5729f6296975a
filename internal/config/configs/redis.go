package configs

// Redis holds configuration for the snapshot store connection. When Redis
// is unreachable at startup, the application falls back to an in-memory
// snapshot store.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}
