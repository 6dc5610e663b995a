package config

// MetricsConfig toggles the Prometheus sink.
type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}
