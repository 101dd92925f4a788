package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tabserrors "github.com/alexisbeaulieu97/tabs/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseLayout loads a layout file from disk, validates it, and returns it.
func ParseLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tabserrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a layout. source names the document in errors.
func Parse(source string, data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, tabserrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateLayout(&layout); err != nil {
		return nil, err
	}

	return &layout, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
