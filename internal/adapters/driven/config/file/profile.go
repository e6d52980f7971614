package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

// DefaultProfileName is the profile file looked up in the config dir.
const DefaultProfileName = "profile.toml"

// LoadProfile reads a company profile from a TOML file. An empty path
// falls back to ~/.rfplens/profile.toml; a missing fallback file
// yields an empty profile rather than an error, so analyses degrade to
// "nothing declared" instead of refusing to run.
func LoadProfile(path string) (domain.CompanyProfile, error) {
	var profile domain.CompanyProfile

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return profile, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".rfplens", DefaultProfileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return profile, nil
		}
		return profile, fmt.Errorf("reading profile: %w", err)
	}

	if err := toml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return profile, nil
}
