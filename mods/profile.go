package mods

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ProfileFileName is the name of the optional per-project profile file.
const ProfileFileName = "streamc.toml"

// tomlProfileFile represents the profile file as it is encoded in TOML.
type tomlProfileFile struct {
	Check *tomlCheckProfile `toml:"check"`
}

// tomlCheckProfile represents a check profile as it is encoded in TOML.
type tomlCheckProfile struct {
	LogLevel   string `toml:"log-level,omitempty"`
	DumpTokens bool   `toml:"dump-tokens"`
}

// CheckProfile is the configuration applied when checking source files.
type CheckProfile struct {
	// The reporter log level: one of "silent", "error", "warn", "verbose".
	LogLevel string

	// Whether the token listing is printed before parsing.
	DumpTokens bool
}

// DefaultProfile returns the profile used when no profile file exists.
func DefaultProfile() *CheckProfile {
	return &CheckProfile{LogLevel: "verbose"}
}

// logLevelNames is the set of valid profile log level names.
var logLevelNames = map[string]struct{}{
	"silent":  {},
	"error":   {},
	"warn":    {},
	"verbose": {},
}

// LoadProfile loads the check profile from the profile file in the given
// directory.  A missing profile file is not an error: the default profile is
// returned instead.
func LoadProfile(dir string) (*CheckProfile, error) {
	f, err := os.Open(filepath.Join(dir, ProfileFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(), nil
		}

		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProfileFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, err
	}

	prof := DefaultProfile()
	if tpf.Check == nil {
		return prof, nil
	}

	if tpf.Check.LogLevel != "" {
		if _, ok := logLevelNames[tpf.Check.LogLevel]; !ok {
			return nil, fmt.Errorf("invalid log level `%s` in %s", tpf.Check.LogLevel, ProfileFileName)
		}

		prof.LogLevel = tpf.Check.LogLevel
	}

	prof.DumpTokens = tpf.Check.DumpTokens

	return prof, nil
}
