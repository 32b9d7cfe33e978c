package app

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvRoot     = "APPICON_ROOT"
	EnvDebug    = "APPICON_DEBUG"
	EnvStdioLog = "APPICON_STDIO_LOG"
)

// Config controls a single export run. The zero value plus Root "." writes
// the standard icon set into the working directory and nothing else.
type Config struct {
	Root        string // output root; all icon paths are relative to it
	Debug       bool   // write a debug log to DebugLogPath
	StdioLog    string // redirect stdout and stderr to this file
	PreviewPath string // also write a contact sheet PNG here
	Framebuffer string // also show the contact sheet on this device
}

const DebugLogPath = "./appicon-debug.log"

// DefaultConfigFromEnv returns defaults, overridden by APPICON_* variables.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{Root: "."}
	if root := os.Getenv(EnvRoot); root != "" {
		cfg.Root = root
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	return cfg, nil
}
