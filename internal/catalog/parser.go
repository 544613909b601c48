package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a catalog file from disk, validates it, and returns the result.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, capsuleerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog data. path only labels errors.
func Parse(path string, data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("catalog is empty")
		}
		return nil, capsuleerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
