package web

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "CLOCKFACE_LISTEN"
	EnvDevMode    = "CLOCKFACE_DEV"

	// DefaultListenAddr serves the simulator on every interface.
	DefaultListenAddr = ":8080"
)

// ServerConfig contains settings for the simulator's HTTP server.
type ServerConfig struct {
	// ListenAddr is host:port; the host may be empty and port 0 picks a
	// free port.
	ListenAddr string
	// DevMode enables permissive CORS so a locally served page can poll
	// the status API.
	DevMode bool
}

// ServerConfigFromEnv starts from DefaultListenAddr and applies the
// CLOCKFACE_LISTEN and CLOCKFACE_DEV overrides.
func ServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{ListenAddr: DefaultListenAddr}
	if raw := os.Getenv(EnvListenAddr); raw != "" {
		cfg.ListenAddr = raw
	}
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		cfg.DevMode = parsed
	}
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, fmt.Errorf("%s: %w", EnvListenAddr, err)
	}
	return cfg, nil
}

// RegisterFlags binds -listen and -dev to fs, using cfg as defaults.
func (cfg *ServerConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "http listen address; also configurable via "+EnvListenAddr)
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "allow cross-origin status polling; also configurable via "+EnvDevMode)
}

// Validate rejects listen addresses net.Listen would refuse, so a typo is
// reported before the clock starts.
func (cfg ServerConfig) Validate() error {
	_, port, err := net.SplitHostPort(cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen address %q: %w", cfg.ListenAddr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("listen address %q: port must be 0-65535", cfg.ListenAddr)
	}
	return nil
}
