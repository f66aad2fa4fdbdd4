// Package yaml loads the intent keyword table from a YAML file.
//
// The file names the intents to override under a "keywords" key:
//
//	keywords:
//	  history: [history, origin, ancestry]
//	  search: [search, find, look up]
//
// Intents missing from the file keep their built-in phrases. An intent
// listed with an empty sequence selects nothing by keyword.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/bookqa"
	"github.com/goccy/go-yaml"
)

// keywordFile is the on-disk layout of a keyword table.
type keywordFile struct {
	Keywords map[string][]string `yaml:"keywords"`
}

// LoadKeywords reads a keyword table from path. An empty path returns the
// built-in table.
func LoadKeywords(path string) (bookqa.KeywordTable, error) {
	if path == "" {
		return bookqa.DefaultKeywords(), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, bookqa.Errorf(bookqa.ENOTFOUND, "keyword file %s not found", path)
	} else if err != nil {
		return nil, bookqa.Errorf(bookqa.EINVALID, "failed to open keyword file: %v", err)
	}
	defer f.Close()

	return DecodeKeywords(f)
}

// DecodeKeywords reads a keyword table from r and merges it over the
// built-in table.
func DecodeKeywords(r io.Reader) (bookqa.KeywordTable, error) {
	var file keywordFile
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, bookqa.Errorf(bookqa.EINVALID, "failed to decode keyword file: %v", err)
	}

	table := bookqa.DefaultKeywords()
	for name, phrases := range file.Keywords {
		intent, err := bookqa.ParseIntent(name)
		if err != nil {
			return nil, err
		}
		if phrases == nil {
			phrases = []string{}
		}
		table[intent] = phrases
	}

	table = table.Clone()
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
