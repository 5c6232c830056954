// SPDX-License-Identifier: MPL-2.0

package forgefile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes forgefile TOML content and validates it against the schema.
func Parse(data []byte) (*Forgefile, error) {
	var f Forgefile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse forgefile: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Marshal encodes a forgefile back to TOML. The forgefile is validated
// first so a scaffolded or programmatically built file round-trips
// through Parse.
func Marshal(f *Forgefile) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode forgefile: %w", err)
	}
	return data, nil
}

// Load reads and parses the forgefile at the given path.
func Load(path string) (*Forgefile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forgefile %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.FilePath = path
	return f, nil
}
