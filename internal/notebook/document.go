// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package notebook models Jupyter notebook documents: a typed cell tree
// with string-or-array source codecs at the JSON boundary, atomic
// persistence, and pure helpers for outputs, validation, and statistics.
// Implements: prd003-notebook-model R1, R2;
//
//	docs/ARCHITECTURE § Notebook Model.
package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/petar-djukic/nbedit/internal/source"
)

// Cell types recognized by the nbformat schema.
const (
	TypeCode     = "code"
	TypeMarkdown = "markdown"
	TypeRaw      = "raw"
)

// MultilineText is the string-or-array text codec used by cell sources and
// output text fields. In memory it is always the canonical fragment form
// (each element keeps its terminator); on disk both a flat string and an
// array of fragments unmarshal, and marshaling always emits the array form.
type MultilineText []string

func (m *MultilineText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = source.Split(s)
		return nil
	}
	var frags []string
	if err := json.Unmarshal(data, &frags); err != nil {
		return err
	}
	// nbformat allows array elements that do not end on line boundaries;
	// re-split so every fragment but the last carries its terminator.
	*m = source.Split(strings.Join(frags, ""))
	return nil
}

func (m MultilineText) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(m))
}

// String returns the flat text form.
func (m MultilineText) String() string {
	return source.Join(m)
}

// Cell is one unit of a notebook. Source is held in canonical fragment
// form. ExecutionCount is raw JSON so a present-but-null count survives
// the round trip; nil means the field was absent. A nil Outputs slice
// means the outputs field was absent (distinct from present-and-empty).
type Cell struct {
	Type           string
	ID             string
	Metadata       json.RawMessage
	Source         MultilineText
	ExecutionCount json.RawMessage
	Outputs        []Output
	Attachments    json.RawMessage

	hasType   bool
	hasSource bool
}

// NewCell builds a cell of the given type holding text. Code cells start
// with a null execution count and an empty outputs list; every new cell
// gets a fresh id as nbformat 4.5 requires.
func NewCell(cellType, text string) Cell {
	c := Cell{
		Type:      cellType,
		ID:        newCellID(),
		Metadata:  json.RawMessage("{}"),
		Source:    source.Split(text),
		hasType:   true,
		hasSource: true,
	}
	if cellType == TypeCode {
		c.ExecutionCount = json.RawMessage("null")
		c.Outputs = []Output{}
	}
	return c
}

// newCellID generates an 8-hex-char cell id, the length jupyter's own
// generator uses.
func newCellID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SetSource replaces the cell's source with the given flat text.
func (c *Cell) SetSource(text string) {
	c.Source = source.Split(text)
	c.hasSource = true
}

// ResetExecution clears captured outputs and the execution count. Only
// meaningful for code cells; callers gate on Type.
func (c *Cell) ResetExecution() {
	c.ExecutionCount = json.RawMessage("null")
	c.Outputs = []Output{}
}

// HasOutputs reports whether the cell carries at least one output.
func (c *Cell) HasOutputs() bool {
	return len(c.Outputs) > 0
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["cell_type"]; ok {
		c.hasType = true
		if err := json.Unmarshal(v, &c.Type); err != nil {
			return fmt.Errorf("cell_type: %w", err)
		}
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &c.ID); err != nil {
			return fmt.Errorf("id: %w", err)
		}
	}
	if v, ok := raw["metadata"]; ok {
		c.Metadata = v
	}
	if v, ok := raw["source"]; ok {
		c.hasSource = true
		if err := json.Unmarshal(v, &c.Source); err != nil {
			return fmt.Errorf("source: %w", err)
		}
	}
	if v, ok := raw["execution_count"]; ok {
		c.ExecutionCount = v
	}
	if v, ok := raw["outputs"]; ok {
		c.Outputs = []Output{}
		if err := json.Unmarshal(v, &c.Outputs); err != nil {
			return fmt.Errorf("outputs: %w", err)
		}
	}
	if v, ok := raw["attachments"]; ok {
		c.Attachments = v
	}
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	w := newFieldWriter(&buf)
	w.field("cell_type", c.Type)
	if c.Type == TypeCode {
		ec := c.ExecutionCount
		if ec == nil {
			ec = json.RawMessage("null")
		}
		w.raw("execution_count", ec)
	}
	if c.ID != "" {
		w.field("id", c.ID)
	}
	if c.Attachments != nil {
		w.raw("attachments", c.Attachments)
	}
	md := c.Metadata
	if md == nil {
		md = json.RawMessage("{}")
	}
	w.raw("metadata", md)
	if c.Type == TypeCode {
		outs := c.Outputs
		if outs == nil {
			outs = []Output{}
		}
		w.field("outputs", outs)
	} else if c.Outputs != nil {
		w.field("outputs", c.Outputs)
	}
	w.field("source", c.Source)
	if w.err != nil {
		return nil, w.err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is a whole notebook. Metadata is kept raw so unknown keys
// survive edits untouched.
type Document struct {
	Cells         []Cell
	Metadata      json.RawMessage
	NBFormat      int
	NBFormatMinor int

	hasCells    bool
	hasFormat   bool
	hasMetadata bool
}

// skeletonMetadata is the metadata block of a freshly created notebook.
const skeletonMetadata = `{
 "kernelspec": {
  "display_name": "Python 3",
  "language": "python",
  "name": "python3"
 },
 "language_info": {
  "codemirror_mode": {"name": "ipython", "version": 3},
  "file_extension": ".py",
  "mimetype": "text/x-python",
  "name": "python",
  "nbconvert_exporter": "python",
  "pygments_lexer": "ipython3",
  "version": "3.8.0"
 }
}`

// Skeleton returns an empty nbformat 4.5 document with a python3
// kernelspec, the shape given to a notebook that does not exist yet.
func Skeleton() *Document {
	return &Document{
		Cells:         []Cell{},
		Metadata:      json.RawMessage(skeletonMetadata),
		NBFormat:      4,
		NBFormatMinor: 5,
		hasCells:      true,
		hasFormat:     true,
		hasMetadata:   true,
	}
}

// Cell returns the cell at the 0-based index, bounds-checked.
func (d *Document) Cell(index int) (*Cell, error) {
	if index < 0 || index >= len(d.Cells) {
		return nil, cellError(index, len(d.Cells))
	}
	return &d.Cells[index], nil
}

// Kernel returns the kernelspec display name, or "Unknown".
func (d *Document) Kernel() string {
	return d.metadataString("kernelspec", "display_name", "Unknown")
}

// Language returns the language_info name, falling back to the kernelspec
// language and finally "python". Used to pick a syntax highlighting lexer.
func (d *Document) Language() string {
	if lang := d.metadataString("language_info", "name", ""); lang != "" {
		return lang
	}
	return d.metadataString("kernelspec", "language", "python")
}

// metadataString digs a string out of a nested metadata block.
func (d *Document) metadataString(block, key, fallback string) string {
	var meta map[string]json.RawMessage
	if err := json.Unmarshal(d.Metadata, &meta); err != nil {
		return fallback
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(meta[block], &inner); err != nil {
		return fallback
	}
	var s string
	if err := json.Unmarshal(inner[key], &s); err != nil || s == "" {
		return fallback
	}
	return s
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["cells"]; ok {
		d.hasCells = true
		if err := json.Unmarshal(v, &d.Cells); err != nil {
			return fmt.Errorf("cells: %w", err)
		}
	}
	if v, ok := raw["metadata"]; ok {
		d.hasMetadata = true
		d.Metadata = v
	}
	if v, ok := raw["nbformat"]; ok {
		d.hasFormat = true
		if err := json.Unmarshal(v, &d.NBFormat); err != nil {
			return fmt.Errorf("nbformat: %w", err)
		}
	}
	if v, ok := raw["nbformat_minor"]; ok {
		if err := json.Unmarshal(v, &d.NBFormatMinor); err != nil {
			return fmt.Errorf("nbformat_minor: %w", err)
		}
	}
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	w := newFieldWriter(&buf)
	cells := d.Cells
	if cells == nil {
		cells = []Cell{}
	}
	w.field("cells", cells)
	md := d.Metadata
	if md == nil {
		md = json.RawMessage("{}")
	}
	w.raw("metadata", md)
	w.field("nbformat", d.NBFormat)
	w.field("nbformat_minor", d.NBFormatMinor)
	if w.err != nil {
		return nil, w.err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// fieldWriter emits JSON object fields in a fixed order, remembering the
// first marshal error.
type fieldWriter struct {
	buf   *bytes.Buffer
	first bool
	err   error
}

func newFieldWriter(buf *bytes.Buffer) *fieldWriter {
	return &fieldWriter{buf: buf, first: true}
}

func (w *fieldWriter) raw(name string, value json.RawMessage) {
	if w.err != nil {
		return
	}
	if !w.first {
		w.buf.WriteByte(',')
	}
	w.first = false
	key, err := json.Marshal(name)
	if err != nil {
		w.err = err
		return
	}
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(value)
}

func (w *fieldWriter) field(name string, value any) {
	if w.err != nil {
		return
	}
	encoded, err := marshalNoEscape(value)
	if err != nil {
		w.err = err
		return
	}
	w.raw(name, encoded)
}

// marshalNoEscape marshals without HTML-escaping <, >, and &, keeping
// notebook text byte-identical to what the user wrote.
func marshalNoEscape(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
