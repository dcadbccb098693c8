package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/INLOpen/blf/blf"
	"github.com/INLOpen/blf/core"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"
)

// WriterConfig holds the settings of files written by blf.Writer.
type WriterConfig struct {
	CompressionLevel int    `yaml:"compression_level"` // 0 stores containers uncompressed, 1..9 are zlib levels
	BufferSizeBytes  int    `yaml:"buffer_size_bytes"` // uncompressed payload per log container
	ApplicationID    uint8  `yaml:"application_id"`
	ApplicationMajor uint8  `yaml:"application_major"`
	ApplicationMinor uint8  `yaml:"application_minor"`
	ApplicationBuild uint32 `yaml:"application_build"`
}

// ReaderConfig holds blf.Reader settings.
type ReaderConfig struct {
	SkipUnsupported    bool   `yaml:"skip_unsupported"`
	MaxObjectSizeBytes uint32 `yaml:"max_object_size_bytes"`
	MaxContainerDepth  int    `yaml:"max_container_depth"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
	Output string `yaml:"output"` // e.g., "stdout", "stderr", "file", "none"
	File   string `yaml:"file"`   // Path to the log file, used if output is "file"
}

// TracingConfig holds configuration for tracing container expansion and
// writer flushes.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Config is the top-level configuration struct.
type Config struct {
	Writer  WriterConfig  `yaml:"writer"`
	Reader  ReaderConfig  `yaml:"reader"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`
}

// Load reads configuration from an io.Reader.
// This is the core logic, separated for testability.
func Load(r io.Reader) (*Config, error) {
	// Set default values
	cfg := &Config{
		Writer: WriterConfig{
			CompressionLevel: int(core.CompressionDefault),
			BufferSizeBytes:  core.DefaultBufferSize,
			ApplicationID:    uint8(core.AppIDUnknown),
		},
		Reader: ReaderConfig{
			SkipUnsupported:    false,
			MaxObjectSizeBytes: core.DefaultMaxObjectSize,
			MaxContainerDepth:  core.DefaultMaxContainerDepth,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
			File:   "blf.log",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "blf",
		},
	}

	// If the reader is nil, it's like an empty file, return defaults.
	if r == nil {
		return cfg, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	// Unmarshal YAML into the config struct, overwriting defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads configuration from a YAML file by path.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// If file doesn't exist, return default config by calling Load with a nil reader.
			return Load(nil)
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	return Load(file)
}

// Validate checks value ranges that YAML types alone do not enforce.
func (c *Config) Validate() error {
	if c.Writer.CompressionLevel < 0 || c.Writer.CompressionLevel > int(core.CompressionMax) {
		return fmt.Errorf("writer.compression_level %d out of range 0..%d", c.Writer.CompressionLevel, core.CompressionMax)
	}
	if c.Writer.BufferSizeBytes < 0 {
		return fmt.Errorf("writer.buffer_size_bytes must not be negative, got %d", c.Writer.BufferSizeBytes)
	}
	if c.Reader.MaxContainerDepth < 0 {
		return fmt.Errorf("reader.max_container_depth must not be negative, got %d", c.Reader.MaxContainerDepth)
	}
	return nil
}

// Tracer returns the tracer named after the service when tracing is enabled
// and nil otherwise. Spans go to the globally registered TracerProvider.
func (c *Config) Tracer() trace.Tracer {
	if !c.Tracing.Enabled {
		return nil
	}
	return otel.Tracer(c.Tracing.ServiceName)
}

// WriterOptions converts the writer section.
func (c *Config) WriterOptions(logger *slog.Logger) blf.WriterOptions {
	return blf.WriterOptions{
		CompressionLevel: core.Compression(c.Writer.CompressionLevel),
		BufferSize:       c.Writer.BufferSizeBytes,
		ApplicationID:    core.AppID(c.Writer.ApplicationID),
		ApplicationMajor: c.Writer.ApplicationMajor,
		ApplicationMinor: c.Writer.ApplicationMinor,
		ApplicationBuild: c.Writer.ApplicationBuild,
		Logger:           logger,
		Tracer:           c.Tracer(),
	}
}

// ReaderOptions converts the reader section.
func (c *Config) ReaderOptions(logger *slog.Logger) blf.ReaderOptions {
	return blf.ReaderOptions{
		SkipUnsupported:   c.Reader.SkipUnsupported,
		MaxObjectSize:     c.Reader.MaxObjectSizeBytes,
		MaxContainerDepth: c.Reader.MaxContainerDepth,
		Logger:            logger,
		Tracer:            c.Tracer(),
	}
}

// NewLogger creates a slog.Logger based on the provided configuration. The
// returned closer is non-nil when the logger writes to a file.
func NewLogger(cfg LoggingConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	var output io.Writer
	var closer io.Closer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	case "file":
		if cfg.File == "" {
			return nil, nil, fmt.Errorf("log output is 'file' but no file path is specified")
		}
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		output = file
		closer = file
	case "none":
		output = io.Discard
	default:
		return nil, nil, fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "json", "":
		return slog.New(slog.NewJSONHandler(output, opts)), closer, nil
	case "text":
		return slog.New(slog.NewTextHandler(output, opts)), closer, nil
	default:
		if closer != nil {
			closer.Close()
		}
		return nil, nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
}
