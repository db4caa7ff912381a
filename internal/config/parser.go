package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	dderrors "github.com/alexisbeaulieu97/dropdown/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads, validates and resolves the document at path.
func Load(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dderrors.NewParseError(path, 0, err)
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	return Resolve(path, doc)
}

// Parse decodes data according to the extension of path. Unknown keys are
// rejected so typos in theme names do not go unnoticed.
func Parse(path string, data []byte) (*Document, error) {
	var doc Document

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, dderrors.NewParseError(path, extractLine(err), err)
		}

	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			line, wrapped := describeTOMLError(err)
			return nil, dderrors.NewParseError(path, line, wrapped)
		}

	default:
		return nil, dderrors.NewParseError(path, 0, fmt.Errorf("unsupported document format %q (use .yaml, .yml or .toml)", ext))
	}

	return &doc, nil
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

// describeTOMLError pulls the line out of go-toml's error types and names
// the offending key for strict-mode failures.
func describeTOMLError(err error) (int, error) {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		first := strict.Errors[0]
		line, _ := first.Position()
		return line, fmt.Errorf("unknown key %q: %w", strings.Join(first.Key(), "."), err)
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		line, _ := decodeErr.Position()
		return line, err
	}

	return 0, err
}
