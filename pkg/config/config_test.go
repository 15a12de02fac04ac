package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/rules"
)

// 🧪 writeConfig writes a config file and returns its path
func writeConfig(t *testing.T, name, content string) (context.Context, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background()), path
}

// 🧪 TestLoadYAML tests loading a YAML config
func TestLoadYAML(t *testing.T) {
	ctx, path := writeConfig(t, "sortrc.yaml", `
source: /tmp/in
destination: /tmp/out
move: true
recursive: true
ignore_patterns:
  - "**/*.tmp"
rules:
  - extension: .pdf
    category: Paperwork
    subcategory: Reports
`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("/tmp/in"), cfg.Source)
	assert.Equal(t, filepath.Clean("/tmp/out"), cfg.Destination)
	assert.True(t, cfg.Move)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, []string{"**/*.tmp"}, cfg.IgnorePatterns)
	assert.Equal(t, config.DefaultLogFile, cfg.LogFile)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "move", cfg.Mode())
}

// 🧪 TestLoadJSON tests loading a JSON config
func TestLoadJSON(t *testing.T) {
	ctx, path := writeConfig(t, "sortrc.json", `{
  "source": "/tmp/in",
  "destination": "/tmp/out",
  "log_file": "audit.log"
}`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	assert.Equal(t, "audit.log", cfg.LogFile)
	assert.False(t, cfg.Move)
	assert.Equal(t, "copy", cfg.Mode())
}

// 🧪 TestLoadHCL tests loading an HCL config with rule blocks
func TestLoadHCL(t *testing.T) {
	ctx, path := writeConfig(t, "sortrc.hcl", `
source      = "/tmp/in"
destination = "/tmp/out"
recursive   = true

rule ".xyz" {
  category    = "Custom"
  subcategory = "Experiments"
}
`)

	cfg, err := config.Load(ctx, path)
	require.NoError(t, err)

	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, ".xyz", cfg.Rules[0].Extension)
	assert.Equal(t, "Custom", cfg.Rules[0].Category)
	assert.Equal(t, "Experiments", cfg.Rules[0].Subcategory)
}

// 🧪 TestLoadErrors tests load and validation failures
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		content       string
		expectedError string
	}{
		{
			name:          "unknown_yaml_field",
			file:          "sortrc.yaml",
			content:       "source: /tmp/in\ndestination: /tmp/out\nbogus: true\n",
			expectedError: "parsing YAML",
		},
		{
			name:          "unknown_json_field",
			file:          "sortrc.json",
			content:       `{"source": "/tmp/in", "destination": "/tmp/out", "bogus": true}`,
			expectedError: "parsing JSON",
		},
		{
			name:          "missing_source",
			file:          "sortrc.yaml",
			content:       "destination: /tmp/out\n",
			expectedError: "source is required",
		},
		{
			name:          "missing_destination",
			file:          "sortrc.yaml",
			content:       "source: /tmp/in\n",
			expectedError: "destination is required",
		},
		{
			name:          "rule_without_category",
			file:          "sortrc.yaml",
			content:       "source: /tmp/in\ndestination: /tmp/out\nrules:\n  - extension: .pdf\n",
			expectedError: "has no category",
		},
		{
			name:          "unsupported_extension",
			file:          "sortrc.toml",
			content:       "source = \"/tmp/in\"\n",
			expectedError: "unsupported config file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, path := writeConfig(t, tt.file, tt.content)
			_, err := config.Load(ctx, path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// 🧪 TestRuleTable tests merging configured rules onto the defaults
func TestRuleTable(t *testing.T) {
	cfg := &config.Config{
		Source:      "/tmp/in",
		Destination: "/tmp/out",
		Rules: []config.Rule{
			{Extension: ".pdf", Category: "Paperwork", Subcategory: "Reports"},
			{Extension: ".xyz", Category: "Custom"},
		},
	}
	require.NoError(t, cfg.Validate())

	table, err := cfg.RuleTable()
	require.NoError(t, err)

	assert.Equal(t, rules.Classification{Category: "Paperwork", Subcategory: "Reports"}, table.Classify(".pdf"))
	assert.Equal(t, rules.Classification{Category: "Custom"}, table.Classify(".xyz"))
	assert.Equal(t, rules.Classification{Category: "Media", Subcategory: "Images"}, table.Classify(".jpg"))
}

// 🧪 TestLoadDotSortrc tests the .sortrc fallback parsing
func TestLoadDotSortrc(t *testing.T) {
	t.Run("yaml_body", func(t *testing.T) {
		ctx, path := writeConfig(t, ".sortrc", "source: /tmp/in\ndestination: /tmp/out\n")
		cfg, err := config.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/tmp/in"), cfg.Source)
	})

	t.Run("hcl_body", func(t *testing.T) {
		ctx, path := writeConfig(t, ".sortrc", "source = \"/tmp/in\"\ndestination = \"/tmp/out\"\n")
		cfg, err := config.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/tmp/out"), cfg.Destination)
	})
}
