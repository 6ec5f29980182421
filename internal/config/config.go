package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultTemplatesDir      = "templates"
	defaultPublicDir         = "public"
	defaultSiteURL           = "https://trenchsniffer.io"
	defaultLogLevel          = "info"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// DefaultEnvFiles are read in order; earlier files win over later ones.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Config captures runtime configuration for the web server.
type Config struct {
	Server    ServerConfig
	Paths     PathsConfig
	Site      SiteConfig
	Analytics AnalyticsConfig
	Dev       bool
	LogLevel  string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// PathsConfig locates on-disk inputs. An empty Content uses the embedded document.
type PathsConfig struct {
	Templates string
	Public    string
	Content   string
}

// SiteConfig holds values used for canonical URLs and structured data.
type SiteConfig struct {
	URL string
}

// AnalyticsConfig mirrors the tags the layout can emit. Empty values disable them.
type AnalyticsConfig struct {
	GAMeasurementID string
	GTMContainerID  string
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFiles     []string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFiles overrides the dotenv files consulted. Passing none disables them.
func WithEnvFiles(paths ...string) Option {
	return func(o *loaderOptions) {
		o.envFiles = paths
	}
}

// WithEnvMap injects explicit values that take precedence over the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv stops Load from consulting os.LookupEnv.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration with precedence env map > process env > dotenv files > defaults.
// Command-line flags are applied by the caller on top of the result.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFiles:     DefaultEnvFiles,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnv, err := loadDotEnv(options.envFiles)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if value, ok := options.envMap[key]; ok {
			return value, true
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		value, ok := dotEnv[key]
		return value, ok
	}

	// Port resolution: TRENCH_WEB_PORT, then the platform's PORT, else 8080.
	port := stringWithDefault(lookup, "TRENCH_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:              ":" + port,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ReadTimeout:       durationWithDefault(lookup, "TRENCH_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "TRENCH_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "TRENCH_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "TRENCH_WEB_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Paths: PathsConfig{
			Templates: defaultTemplatesDir,
			Public:    defaultPublicDir,
			Content:   stringWithDefault(lookup, "TRENCH_WEB_CONTENT", ""),
		},
		Site: SiteConfig{
			URL: strings.TrimRight(stringWithDefault(lookup, "TRENCH_WEB_SITE_URL", defaultSiteURL), "/"),
		},
		Analytics: AnalyticsConfig{
			GAMeasurementID: strings.TrimSpace(stringWithDefault(lookup, "TRENCH_WEB_GA_MEASUREMENT_ID", "")),
			GTMContainerID:  strings.TrimSpace(stringWithDefault(lookup, "TRENCH_WEB_GTM_CONTAINER_ID", "")),
		},
		// Dev mode: TRENCH_WEB_DEV preferred, DEV as fallback; any non-empty value enables it.
		Dev:      stringWithDefault(lookup, "TRENCH_WEB_DEV", "") != "" || stringWithDefault(lookup, "DEV", "") != "",
		LogLevel: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
	}
	return cfg, nil
}

// loadDotEnv merges the files so that earlier paths take precedence. Missing files are skipped.
func loadDotEnv(paths []string) (map[string]string, error) {
	values := map[string]string{}
	for i := len(paths) - 1; i >= 0; i-- {
		if paths[i] == "" {
			continue
		}
		read, err := godotenv.Read(paths[i])
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: unable to read %s: %w", paths[i], err)
		}
		for k, v := range read {
			values[k] = v
		}
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
