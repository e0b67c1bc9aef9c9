package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"

	"responder/errs"
)

const (
	// DefaultHost binds every interface so a proxy on the same host can
	// reach the responder over loopback.
	DefaultHost = "0.0.0.0"
	DefaultPort = 3000

	PortEnv = "PORT"
)

type Config struct {
	Host string
	Port int
}

func Default() *Config {
	return &Config{
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

// Resolve builds a Config from a host and a raw port value, as read from
// flags or the environment. The returned Config is always usable. A non-nil
// error reports a port value that was ignored in favour of DefaultPort.
func Resolve(host, rawPort string) (*Config, error) {
	cfg := Default()
	if host != "" {
		cfg.Host = host
	}

	if rawPort == "" {
		return cfg, nil
	}

	port, err := ParsePort(rawPort)
	if err != nil {
		return cfg, err
	}
	cfg.Port = port

	return cfg, nil
}

func ParsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 || port > 65535 {
		return 0, errors.Wrapf(errs.ErrInvalidPort, "%q", raw)
	}

	return port, nil
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) URL() string {
	return fmt.Sprintf("http://%s/", c.Address())
}
