package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/tmplfill/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for tmplfill
	EnvConfigDir = "TMPLFILL_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for tmplfill
	EnvStateDir = "TMPLFILL_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for tmplfill-specific files
	AppDirName = "tmplfill"

	// DefaultSettingsFile is the settings document looked up when none is given
	DefaultSettingsFile = "Options.xml"

	// ConfigFileName is the name of the tool configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "tmplfill.log"
)

// Paths provides centralized path management for tmplfill
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
	FindSettings(explicit string) (string, error)
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance, honouring the environment overrides
func New() (Paths, error) {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) StateDir() string { return p.xdgState }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// FindSettings locates the settings document.
// An explicit path is used as-is (after home expansion) and must exist.
// Otherwise Options.xml is looked up in the working directory, then in the
// config directory.
func (p *paths) FindSettings(explicit string) (string, error) {
	if explicit != "" {
		path := ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "settings file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	candidates := []string{
		DefaultSettingsFile,
		filepath.Join(p.xdgConfig, DefaultSettingsFile),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrConfigLoad, "no settings file found (looked for %s)", strings.Join(candidates, ", ")).
		WithDetail("candidates", candidates)
}

// Resolve makes path absolute-or-relative to base. Absolute paths and
// home-relative paths are returned expanded; anything else is joined to base.
func Resolve(base, path string) string {
	if path == "" {
		return path
	}
	path = ExpandHome(path)
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
