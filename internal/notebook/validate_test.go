// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package notebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, src string) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(src), &doc))
	return &doc
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name: "valid notebook",
			src:  `{"cells": [], "metadata": {}, "nbformat": 4, "nbformat_minor": 5}`,
		},
		{
			name:       "missing cells and nbformat",
			src:        `{"metadata": {}}`,
			wantErrors: []string{"Missing required field 'cells'", "Missing required field 'nbformat'"},
		},
		{
			name:         "missing metadata is a warning",
			src:          `{"cells": [], "nbformat": 4}`,
			wantWarnings: []string{"Missing 'metadata' field"},
		},
		{
			name:       "cell missing type and source",
			src:        `{"cells": [{"metadata": {}}], "metadata": {}, "nbformat": 4}`,
			wantErrors: []string{"Cell 0: Missing 'cell_type'", "Cell 0: Missing 'source'"},
		},
		{
			name:         "unknown cell type is a warning",
			src:          `{"cells": [{"cell_type": "sql", "source": []}], "metadata": {}, "nbformat": 4}`,
			wantWarnings: []string{"Cell 0: Unknown cell_type 'sql'"},
		},
		{
			name:         "code cell without outputs field",
			src:          `{"cells": [{"cell_type": "code", "source": [], "execution_count": null}], "metadata": {}, "nbformat": 4}`,
			wantWarnings: []string{"Cell 0: Code cell missing 'outputs'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := parseDoc(t, tt.src).Validate()
			assert.Equal(t, tt.wantErrors, report.Errors)
			assert.Equal(t, tt.wantWarnings, report.Warnings)
			assert.Equal(t, len(tt.wantErrors) == 0, report.Valid())
		})
	}
}

func TestValidate_SkeletonAndNewCells(t *testing.T) {
	doc := Skeleton()
	doc.AddCell(-1, TypeCode, "x\n")
	doc.AddCell(-1, TypeMarkdown, "# t\n")

	report := doc.Validate()
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}
