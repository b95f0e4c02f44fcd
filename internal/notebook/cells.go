// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-notebook-model R3 (cell mutation).
package notebook

import (
	"fmt"

	"github.com/petar-djukic/nbedit/pkg/types"
)

func cellError(index, total int) error {
	return &types.CellError{Index: index, Total: total}
}

// AddCell inserts a new cell of the given type. Index -1 (or anything at
// or past the end) appends; negative positions clamp to the front. Returns
// the index the cell ended up at and whether it was appended.
func (d *Document) AddCell(index int, cellType, text string) (int, bool) {
	cell := NewCell(cellType, text)

	if index == -1 || index >= len(d.Cells) {
		d.Cells = append(d.Cells, cell)
		return len(d.Cells) - 1, true
	}
	if index < 0 {
		index = 0
	}
	d.Cells = append(d.Cells, Cell{})
	copy(d.Cells[index+1:], d.Cells[index:])
	d.Cells[index] = cell
	return index, false
}

// UpdateCell replaces the cell's whole source. Unless keepOutputs is set,
// a code cell loses its captured outputs and execution count, since they
// no longer correspond to the source.
func (d *Document) UpdateCell(index int, text string, keepOutputs bool) error {
	cell, err := d.Cell(index)
	if err != nil {
		return err
	}
	cell.SetSource(text)
	if cell.Type == TypeCode && !keepOutputs {
		cell.ResetExecution()
	}
	return nil
}

// DeleteCell removes the cell at index, reporting its type.
func (d *Document) DeleteCell(index int) (string, error) {
	cell, err := d.Cell(index)
	if err != nil {
		return "", err
	}
	cellType := cell.Type
	d.Cells = append(d.Cells[:index], d.Cells[index+1:]...)
	return cellType, nil
}

// ClearOutputs resets execution state of code cells. A nil indices slice
// clears every code cell; explicit indices that are out of range or name
// a non-code cell are skipped with a warning, never an error. Returns the
// indices actually cleared.
func (d *Document) ClearOutputs(indices []int) (cleared []int, warnings []string) {
	if indices == nil {
		for i := range d.Cells {
			if d.Cells[i].Type == TypeCode {
				d.Cells[i].ResetExecution()
				cleared = append(cleared, i)
			}
		}
		return cleared, nil
	}

	for _, i := range indices {
		if i < 0 || i >= len(d.Cells) {
			warnings = append(warnings, fmt.Sprintf("cell index %d out of range, skipping", i))
			continue
		}
		if d.Cells[i].Type != TypeCode {
			warnings = append(warnings, fmt.Sprintf("cell %d is not a code cell, skipping", i))
			continue
		}
		d.Cells[i].ResetExecution()
		cleared = append(cleared, i)
	}
	return cleared, warnings
}
