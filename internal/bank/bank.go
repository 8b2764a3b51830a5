package bank

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/letsssgooo/coffeequiz/internal/quiz"
)

// Format - формат файла с банком вопросов.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat возвращается для неподдерживаемого расширения файла.
var ErrUnknownFormat = errors.New("unknown bank format")

// document - структура файла банка.
type document struct {
	Title     string          `json:"title" yaml:"title"`
	Questions []quiz.Question `json:"questions" yaml:"questions"`
}

// FormatFromPath определяет формат по расширению файла.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load читает банк вопросов из файла.
func Load(path string) (*quiz.Bank, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	return Parse(data, format)
}

// Parse разбирает банк вопросов и проверяет его.
func Parse(data []byte, format Format) (*quiz.Bank, error) {
	var (
		doc document
		err error
	)

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		doc, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	return quiz.NewBank(doc.Title, doc.Questions)
}

func parseYAML(data []byte) (document, error) {
	var doc document

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return document{}, err
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return document{}, errors.New("multiple YAML documents are not supported")
		}
		return document{}, err
	}

	return doc, nil
}
