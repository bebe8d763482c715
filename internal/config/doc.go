// Package config provides configuration loading for hookctl and embedders.
//
// The configuration is stored in hooks.toml. Every field is optional; a
// missing file yields the defaults.
//
// # Configuration File Structure
//
//	debug = true
//	log_level = "debug"
//
//	[metrics]
//	namespace = "hooks"
//	addr = ":9090"
//
// # Usage
//
//	cfg, err := config.Load("hooks.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
package config
