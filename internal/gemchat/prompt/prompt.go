// Package prompt loads TOML prompt templates and applies them to user
// input before a completion request.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Prompt represents the structure of a TOML prompt file. Both text
// fields may contain the {{input}} placeholder.
type Prompt struct {
	System string  `toml:"system"`
	User   string  `toml:"user"`
	Model  *string `toml:"model,omitempty"` // Optional: overrides the configured model
}

// Load reads a prompt template file.
func Load(path string) (*Prompt, error) {
	var p Prompt
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("decoding prompt file: %w", err)
	}
	return &p, nil
}

// Find locates the named template (with or without .toml extension)
// across dirs. Later directories take precedence over earlier ones.
func Find(name string, dirs []string) (string, error) {
	file := name
	if !strings.HasSuffix(file, ".toml") {
		file += ".toml"
	}

	var found string
	for _, dir := range dirs {
		candidate := filepath.Join(dir, file)
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
		}
	}

	if found == "" {
		return "", fmt.Errorf("prompt file %q not found in any of the prompt directories: %v", file, dirs)
	}
	return found, nil
}

// Format substitutes input into the template and flattens it into the
// single text string the endpoint receives.
func (p *Prompt) Format(input string) string {
	system := strings.ReplaceAll(p.System, "{{input}}", input)
	user := strings.ReplaceAll(p.User, "{{input}}", input)

	switch {
	case system == "":
		return user
	case user == "":
		return system
	default:
		return system + "\n\n" + user
	}
}

// List returns the template names (without extension) available across
// dirs, deduplicated and sorted.
func List(dirs []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading prompt directory %q: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			seen[strings.TrimSuffix(entry.Name(), ".toml")] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
