// Copyright Asteria Studio, 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/asteria-studio/pipeline-core/internal/pipeline"
	"github.com/asteria-studio/pipeline-core/pkg/types"
)

// execute runs the root command with args and returns the combined output
// cobra wrote through the command streams.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProcessRequiresPages(t *testing.T) {
	_, err := execute(t, "process")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages to process")
}

func TestProcessPrintsStatusLines(t *testing.T) {
	out, err := execute(t, "process", "demo", "my page")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing not yet implemented for demo\n")
	assert.Contains(t, out, "Processing not yet implemented for my page\n")
	assert.Contains(t, out, "Batch summary: 2 pages")
}

func TestProcessWritesResults(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "results.yaml")

	_, err := execute(t, "process", "page-001", "page-002", "--out", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results []types.PageResult
	require.NoError(t, yaml.Unmarshal(data, &results))
	require.Len(t, results, 2)
	assert.Equal(t, "page-001", results[0].PageID)
	assert.Equal(t, "Processing not yet implemented for page-001", results[0].Message)
	assert.Equal(t, "Processing not yet implemented for page-002", results[1].Message)
}

func TestProcessOutPathFromConfig(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "results.yaml")
	viper.Set("process.out", outPath)
	t.Cleanup(func() { viper.Set("process.out", "") })

	// No --out flag: the path comes from configuration.
	_, err := execute(t, "process", "cover", "--out", "")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results []types.PageResult
	require.NoError(t, yaml.Unmarshal(data, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "cover", results[0].PageID)
}

func TestProcessReadsPagesFile(t *testing.T) {
	pagesPath := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, pipeline.WritePagesFile(pagesPath, []string{"page-010", "page-011"}))

	// Command-line IDs run before pages-file IDs.
	out, err := execute(t, "process", "first", "--pages-file", pagesPath, "--out", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Processing not yet implemented for first", lines[0])
	assert.Equal(t, "Processing not yet implemented for page-010", lines[1])
	assert.Equal(t, "Processing not yet implemented for page-011", lines[2])
}

func TestVersionOutput(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pipeline-core "+version+"\n", out)
}
