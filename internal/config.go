package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"confgw/domain"
	"confgw/runtime"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	FileTransferDir string        `env:"FILE_TRANSFER_DIR,required=true" validate:"required"`
	ContactHost     string        `env:"CONTACT_HOST,required=true" validate:"required,hostname|ip"`
	RingAcceptDelay time.Duration `env:"RING_ACCEPT_DELAY,default=4s"`
	// Comma separated transport preference list for directory resolution.
	Transports             string        `env:"TRANSPORTS,default=tls,tcp,udp"`
	OutboundProxyHost      string        `env:"OUTBOUND_PROXY_HOST"`
	OutboundProxyPort      int           `env:"OUTBOUND_PROXY_PORT,default=5060"`
	OutboundProxyTransport string        `env:"OUTBOUND_PROXY_TRANSPORT,default=udp"`
	ClusterScope           string        `env:"CLUSTER_SCOPE"`
	DebugPort              int           `env:"DEBUG_PORT,default=8099"`
	StatsInterval          time.Duration `env:"STATS_INTERVAL,default=30s"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

func (c Config) TransportList() []string {
	var out []string
	for _, t := range strings.Split(c.Transports, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Settings maps the env config onto the orchestrator settings.
func (c Config) Settings() runtime.Settings {
	s := runtime.Settings{
		RingAcceptDelay: c.RingAcceptDelay,
		ContactHost:     c.ContactHost,
		Transports:      c.TransportList(),
		ClusterScope:    c.ClusterScope,
	}
	if c.OutboundProxyHost != "" {
		s.OutboundProxy = &domain.Route{
			Address:   c.OutboundProxyHost,
			Port:      c.OutboundProxyPort,
			Transport: c.OutboundProxyTransport,
		}
	}
	return s
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
