package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"catalog/internal/products"
)

//go:embed data/products.yaml
var defaultFixtures []byte

type fixtureFile struct {
	Products []products.CreateInput `yaml:"products"`
}

// LoadFixtures читает YAML вида {products: [...]}
func LoadFixtures(r io.Reader) ([]products.CreateInput, error) {
	var f fixtureFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return f.Products, nil
}

// LoadFixturesFile — то же из файла; пустой path = встроенный набор
func LoadFixturesFile(path string) ([]products.CreateInput, error) {
	if path == "" {
		return DefaultFixtures()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return LoadFixtures(bytes.NewReader(data))
}

// DefaultFixtures — встроенный набор товаров
func DefaultFixtures() ([]products.CreateInput, error) {
	return LoadFixtures(bytes.NewReader(defaultFixtures))
}
