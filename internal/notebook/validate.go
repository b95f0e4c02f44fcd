// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-notebook-model R7 (structure validation).
package notebook

import (
	"fmt"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// Validate checks the document against the structural requirements of the
// nbformat schema nbedit relies on. Missing required fields are errors;
// tolerated deviations are warnings.
func (d *Document) Validate() types.ValidationReport {
	var report types.ValidationReport

	if !d.hasCells {
		report.Errors = append(report.Errors, "Missing required field 'cells'")
	}
	if !d.hasFormat {
		report.Errors = append(report.Errors, "Missing required field 'nbformat'")
	}
	if !d.hasMetadata {
		report.Warnings = append(report.Warnings, "Missing 'metadata' field")
	}

	for i := range d.Cells {
		cell := &d.Cells[i]
		if !cell.hasType {
			report.Errors = append(report.Errors, fmt.Sprintf("Cell %d: Missing 'cell_type'", i))
		} else if cell.Type != TypeCode && cell.Type != TypeMarkdown && cell.Type != TypeRaw {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Cell %d: Unknown cell_type '%s'", i, cell.Type))
		}

		if !cell.hasSource {
			report.Errors = append(report.Errors, fmt.Sprintf("Cell %d: Missing 'source'", i))
		}

		if cell.Type == TypeCode && cell.Outputs == nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("Cell %d: Code cell missing 'outputs'", i))
		}
	}

	return report
}
