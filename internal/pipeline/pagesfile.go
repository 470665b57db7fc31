// Copyright Asteria Studio, 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/asteria-studio/pipeline-core/pkg/types"
)

// PagesFile is the on-disk representation of a batch of pages queued for
// processing. The host application writes one of these and hands the path
// to the CLI; identifiers are opaque and kept in file order.
type PagesFile struct {
	Pages []string `yaml:"pages"`
}

// ReadPagesFile loads a pages file from disk. A file with an empty or
// missing pages list is valid and yields no work.
func ReadPagesFile(path string) (*PagesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pages file: %w", err)
	}
	var pf PagesFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing pages file: %w", err)
	}
	return &pf, nil
}

// WritePagesFile saves a batch of page IDs to a YAML pages file.
func WritePagesFile(path string, pageIDs []string) error {
	data, err := yaml.Marshal(&PagesFile{Pages: pageIDs})
	if err != nil {
		return fmt.Errorf("marshaling pages file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteResults saves per-page results to a YAML file for the host
// application to pick up.
func WriteResults(path string, results []types.PageResult) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
