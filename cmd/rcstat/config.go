package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose    = "verbose"
	FlagConfig     = "config"
	FlagAPIAddress = "api-address"
	FlagTimeout    = "timeout"
	FlagPathStyle  = "path-style"
	FlagLogDir     = "log-dir"

	// Query flags
	FlagGroup = "group"
	FlagJob   = "job"

	// Watch command flags
	FlagInterval = "interval"
	FlagTUI      = "tui"
)

// configKeys maps global flags onto the config keys they override.
// Flags not listed here bind under their own name.
var configKeys = map[string]string{
	FlagAPIAddress: "engine.api_address",
	FlagTimeout:    "engine.timeout",
	FlagPathStyle:  "engine.path_style",
	FlagLogDir:     "paths.log_dir",
}
