package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/sortrc/pkg/rules"
)

// 🧪 TestClassify tests extension classification against the default table
func TestClassify(t *testing.T) {
	table := rules.Default()

	tests := []struct {
		name string
		ext  string
		want rules.Classification
	}{
		{
			name: "known_extension",
			ext:  ".pdf",
			want: rules.Classification{Category: "Documents", Subcategory: "PDFs"},
		},
		{
			name: "uppercase_extension",
			ext:  ".PDF",
			want: rules.Classification{Category: "Documents", Subcategory: "PDFs"},
		},
		{
			name: "mixed_case_extension",
			ext:  ".JpG",
			want: rules.Classification{Category: "Media", Subcategory: "Images"},
		},
		{
			name: "empty_extension",
			ext:  "",
			want: rules.NoExtension,
		},
		{
			name: "unknown_extension",
			ext:  ".xyz",
			want: rules.Unknown,
		},
		{
			name: "one_level_entry",
			ext:  ".ttf",
			want: rules.Classification{Category: "Fonts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Classify(tt.ext))
		})
	}
}

// 🧪 TestClassifyPriority tests that the no-extension default beats the unknown default
func TestClassifyPriority(t *testing.T) {
	table, err := rules.New(map[string]rules.Classification{})
	require.NoError(t, err)

	assert.Equal(t, rules.NoExtension, table.Classify(""))
	assert.Equal(t, rules.Unknown, table.Classify(".anything"))
}

// 🧪 TestNewValidation tests table construction errors
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name          string
		entries       map[string]rules.Classification
		expectedError string
	}{
		{
			name: "missing_dot",
			entries: map[string]rules.Classification{
				"pdf": {Category: "Documents"},
			},
			expectedError: "must start with a dot",
		},
		{
			name: "missing_category",
			entries: map[string]rules.Classification{
				".pdf": {},
			},
			expectedError: "has no category",
		},
		{
			name: "conflicting_case_variants",
			entries: map[string]rules.Classification{
				".pdf": {Category: "Documents", Subcategory: "PDFs"},
				".PDF": {Category: "Other Files"},
			},
			expectedError: "extension \".pdf\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.New(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// 🧪 TestMerge tests that overrides replace and extend the base table
func TestMerge(t *testing.T) {
	base := rules.Default()

	merged, err := base.Merge(map[string]rules.Classification{
		".pdf": {Category: "Paperwork", Subcategory: "Reports"},
		".xyz": {Category: "Custom"},
	})
	require.NoError(t, err)

	assert.Equal(t, rules.Classification{Category: "Paperwork", Subcategory: "Reports"}, merged.Classify(".pdf"))
	assert.Equal(t, rules.Classification{Category: "Custom"}, merged.Classify(".XYZ"))

	// Base table is untouched
	assert.Equal(t, rules.Classification{Category: "Documents", Subcategory: "PDFs"}, base.Classify(".pdf"))
}

// 🧪 TestSegments tests path segment derivation
func TestSegments(t *testing.T) {
	two := rules.Classification{Category: "Media", Subcategory: "Images"}
	assert.Equal(t, []string{"Media", "Images"}, two.Segments())
	assert.Equal(t, filepath.Join("Media", "Images"), two.Rel())

	one := rules.Classification{Category: "Fonts"}
	assert.Equal(t, []string{"Fonts"}, one.Segments())
	assert.Equal(t, "Fonts", one.Rel())
}
