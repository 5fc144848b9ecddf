package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmm/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigPath string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath   = "TMM_SOCKET"
	envWidth        = "TMM_WIDTH"
	envHeight       = "TMM_HEIGHT"
	envLegend       = "TMM_LEGEND"
	envDetachOthers = "TMM_DETACH_OTHERS"
	envRefresh      = "TMM_REFRESH"
	envTrace        = "TMM_TRACE"
	envLogFile      = "TMM_LOG_FILE"
	envConfig       = "TMM_CONFIG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flags, then environment, then the YAML file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmm", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	legend := fs.Bool("legend", envOrBool(env, envLegend, true), "show the hotkey legend row")
	detachOthers := fs.Bool("detach-others", envOrBool(env, envDetachOthers, true), "detach other clients when attaching with enter")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "re-query tmux at this interval (0 disables)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configPath := fs.String("config", envOrDefault(env, envConfig, DefaultPath(env)), "path to the YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	file, err := LoadFile(*configPath)
	if err != nil {
		return Config{}, fmt.Errorf("config file: %w", err)
	}
	fileRefresh, err := file.RefreshInterval()
	if err != nil {
		return Config{}, fmt.Errorf("config file: %w", err)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	// The file applies unless a flag was given or the env value parsed.
	fromFile := func(name, envKey string, parse func(string) error) bool {
		if explicit[name] {
			return false
		}
		return !envUsable(env, envKey, parse)
	}

	if fromFile("socket", envSocketPath, nonBlank) {
		*socket = file.Socket
	}
	if fromFile("width", envWidth, parseInt) {
		*width = file.Width
	}
	if fromFile("height", envHeight, parseInt) {
		*height = file.Height
	}
	if fromFile("legend", envLegend, parseBool) {
		*legend = file.Legend
	}
	if fromFile("detach-others", envDetachOthers, parseBool) {
		*detachOthers = file.DetachOthers
	}
	if fromFile("refresh", envRefresh, parseDuration) {
		*refresh = fileRefresh
	}
	if fromFile("trace", envTrace, parseBool) {
		*trace = file.Trace
	}
	if fromFile("log-file", envLogFile, nonBlank) {
		*logFile = file.LogFile
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			Width:        *width,
			Height:       *height,
			ShowLegend:   *legend,
			DetachOthers: *detachOthers,
			Refresh:      *refresh,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ConfigPath: *configPath,
		Flags: map[string]string{
			"socket":       *socket,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"legend":       strconv.FormatBool(*legend),
			"detachOthers": strconv.FormatBool(*detachOthers),
			"refresh":      refresh.String(),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"config":       *configPath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// envUsable reports whether key is set to a value parse accepts.
func envUsable(env map[string]string, key string, parse func(string) error) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false
	}
	return parse(v) == nil
}

func nonBlank(string) error { return nil }

func parseInt(v string) error {
	_, err := strconv.Atoi(v)
	return err
}

func parseBool(v string) error {
	_, err := strconv.ParseBool(v)
	return err
}

func parseDuration(v string) error {
	_, err := time.ParseDuration(v)
	return err
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	return nil
}
