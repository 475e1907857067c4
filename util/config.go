package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/Drolfothesgnir/skim/dom"
)

type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	ParserMaxDepth    int      `mapstructure:"PARSER_MAX_DEPTH"`
	TrackIDs          bool     `mapstructure:"TRACK_IDS"`
	TrackClasses      bool     `mapstructure:"TRACK_CLASSES"`
	MaxInputBytes     int      `mapstructure:"MAX_INPUT_BYTES"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ParserOptions translates the service config into parse options.
func (config *Config) ParserOptions() dom.Options {
	opts := dom.Options{}

	if config.TrackIDs {
		opts = opts.WithTrackIDs()
	}
	if config.TrackClasses {
		opts = opts.WithTrackClasses()
	}
	if config.ParserMaxDepth > 0 {
		opts = opts.WithMaxDepth(config.ParserMaxDepth)
	}

	return opts
}

// ExtractHostPort parses the HTTP server address and returns the host and port
// components. The scheme is optional; if no port is specified, port will be an
// empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress

	hostport := addr
	if strings.Contains(addr, "://") {
		var u *url.URL
		u, err = url.Parse(addr)
		if err != nil {
			return "", "", fmt.Errorf("error parsing http server url: %w", err)
		}
		hostport = u.Host
	}

	host, port, err = net.SplitHostPort(hostport)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the whole thing is the hostname.
		host, port, err = strings.Trim(hostport, "[]"), "", nil
	}

	if host == "" || strings.ContainsAny(host, " /") {
		return "", "", fmt.Errorf("invalid http server address %q", addr)
	}

	return host, port, nil
}
