package relay

import (
	"log/slog"
	"time"
)

type Config struct {
	SendBuffer   int           `env:"RELAY_SEND_BUFFER" envDefault:"256"`       // SendBuffer is the per-connection outbound queue length.
	ReadLimit    int64         `env:"RELAY_READ_LIMIT" envDefault:"1048576"`    // ReadLimit caps the size of a single inbound frame in bytes.
	WriteTimeout time.Duration `env:"RELAY_WRITE_TIMEOUT" envDefault:"10s"`     // WriteTimeout bounds a single websocket write.
	PingInterval time.Duration `env:"RELAY_PING_INTERVAL" envDefault:"30s"`     // PingInterval is how often idle connections are pinged.
}

type relayConfig struct {
	Config
	log *slog.Logger
}

func defaultRelayConfig() relayConfig {
	return relayConfig{
		Config: Config{
			SendBuffer:   256,
			ReadLimit:    1 << 20,
			WriteTimeout: 10 * time.Second,
			PingInterval: 30 * time.Second,
		},
	}
}

// Option configures a Relay.
type Option func(*relayConfig)

// WithLogger supplies a logger. If nil or omitted, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *relayConfig) { c.log = l }
}

// WithConfig applies env-loaded settings. Zero values keep the defaults.
func WithConfig(cfg Config) Option {
	return func(c *relayConfig) {
		if cfg.SendBuffer > 0 {
			c.SendBuffer = cfg.SendBuffer
		}
		if cfg.ReadLimit > 0 {
			c.ReadLimit = cfg.ReadLimit
		}
		if cfg.WriteTimeout > 0 {
			c.WriteTimeout = cfg.WriteTimeout
		}
		if cfg.PingInterval > 0 {
			c.PingInterval = cfg.PingInterval
		}
	}
}

// WithSendBuffer sets the per-connection outbound queue length.
func WithSendBuffer(n int) Option {
	if n <= 0 {
		panic("WithSendBuffer: size must be > 0")
	}
	return func(c *relayConfig) { c.SendBuffer = n }
}

// WithWriteTimeout bounds a single websocket write.
func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithWriteTimeout: duration must be > 0")
	}
	return func(c *relayConfig) { c.WriteTimeout = d }
}
