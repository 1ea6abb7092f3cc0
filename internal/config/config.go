package config

// Config holds runtime configuration for the server.
type Config struct {
	Port    string
	Feed    string
	NFLCom  NFLComConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:    envOrDefault(envPort, defaultPort),
		Feed:    envOrDefault(envFeed, defaultFeed),
		NFLCom:  loadNFLCom(),
		Metrics: loadMetrics(),
	}
}
