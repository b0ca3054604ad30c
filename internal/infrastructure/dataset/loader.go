// Package dataset handles loading pipeline inputs (raw product CSV, schema
// and query JSON) and writing the JSON result artifacts.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopgraph/pipeline/internal/domain"
)

// LoadProducts reads raw product records from a CSV file. The first row is
// treated as a header; columns are matched by name so feed column order does
// not matter. Unknown columns are ignored.
func LoadProducts(path string) ([]domain.RawProduct, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		return nil, fmt.Errorf("%w: %q (want .csv)", domain.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening products file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var products []domain.RawProduct
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV record: %w", err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		products = append(products, domain.RawProduct{
			ProductID:    field("product_id"),
			Title:        field("title"),
			Description:  field("description"),
			Brand:        field("brand"),
			Category:     field("category"),
			Price:        field("price"),
			Availability: field("availability"),
			ImageURLs:    field("image_urls"),
		})
	}

	return products, nil
}

// LoadSchema reads the AI schema definition from a JSON file.
func LoadSchema(path string) (domain.Schema, error) {
	var schema domain.Schema
	if err := loadJSON(path, &schema); err != nil {
		return domain.Schema{}, err
	}
	return schema, nil
}

// queriesFile is the on-disk format of the test query configuration
type queriesFile struct {
	Queries []string `json:"queries"`
}

// LoadQueries reads the test query list from a JSON file.
func LoadQueries(path string) ([]string, error) {
	var file queriesFile
	if err := loadJSON(path, &file); err != nil {
		return nil, err
	}
	return file.Queries, nil
}

func loadJSON(path string, v interface{}) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return fmt.Errorf("%w: %q (want .json)", domain.ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return nil
}
