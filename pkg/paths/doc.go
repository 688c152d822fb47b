// Package paths provides centralized path handling for tmplfill.
//
// This package implements the XDG Base Directory specification for the few
// locations tmplfill owns and resolves the paths found in settings documents.
// It handles:
//
//   - XDG directory structure (config, state)
//   - Settings document discovery
//   - Home expansion and resolution of relative option paths
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - TMPLFILL_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/tmplfill)
//   - TMPLFILL_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/tmplfill)
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settingsFile, err := p.FindSettings("")  // ./Options.xml or $XDG_CONFIG_HOME/tmplfill/Options.xml
//	logFile := p.LogFilePath()               // $XDG_STATE_HOME/tmplfill/tmplfill.log
package paths
