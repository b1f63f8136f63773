package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SeedQuote is one entry of a seed file.
type SeedQuote struct {
	Text   string `koanf:"text"`
	Author string `koanf:"author"`
}

// LoadSeedFile reads a YAML document of the form
//
//	quotes:
//	  - text: "..."
//	    author: "..."
//
// An empty path yields no entries.
func LoadSeedFile(path string) ([]SeedQuote, error) {
	if path == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading seed file %q: %w", path, err)
	}

	var quotes []SeedQuote
	if err := k.Unmarshal("quotes", &quotes); err != nil {
		return nil, fmt.Errorf("decoding seed file %q: %w", path, err)
	}

	return quotes, nil
}
