package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxManifestFileSize = 1024 * 1024 // 1MB

// Load reads and parses a manifest file. Files larger than 1MB are rejected
// to bound resource use.
func Load(path string) (*NodeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat manifest: %w", err)
	}
	if info.Size() > maxManifestFileSize {
		return nil, fmt.Errorf("%s: %w", path, ErrFileTooLarge)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(content)
}

// Parse parses and validates manifest YAML.
func Parse(content []byte) (*NodeSpec, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var spec NodeSpec
	if err := k.Unmarshal("", &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &spec, nil
}
