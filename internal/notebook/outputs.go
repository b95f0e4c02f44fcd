// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd003-notebook-model R6 (output text and binary extraction).
package notebook

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petar-djukic/nbedit/pkg/types"
)

// Output is one captured execution output. The record stays raw JSON so
// fields nbedit does not interpret survive edits verbatim; accessors decode
// only what they need.
type Output map[string]json.RawMessage

// Type returns the output_type discriminator, or "".
func (o Output) Type() string {
	var t string
	json.Unmarshal(o["output_type"], &t)
	return t
}

// Text returns the textual form of the output: a stream's text, the
// text/plain entry of a rich output's data bundle, or "ename: evalue" for
// an error. Outputs with none of these contribute no text.
func (o Output) Text() string {
	switch o.Type() {
	case "stream":
		var text MultilineText
		if err := json.Unmarshal(o["text"], &text); err != nil {
			return ""
		}
		return text.String()
	case "error":
		var ename, evalue string
		json.Unmarshal(o["ename"], &ename)
		json.Unmarshal(o["evalue"], &evalue)
		if ename == "" {
			ename = "Error"
		}
		return fmt.Sprintf("%s: %s", ename, evalue)
	default:
		if plain, ok := o.dataText("text/plain"); ok {
			return plain
		}
		return ""
	}
}

// data decodes the mime bundle, or nil when absent.
func (o Output) data() map[string]json.RawMessage {
	var bundle map[string]json.RawMessage
	if err := json.Unmarshal(o["data"], &bundle); err != nil {
		return nil
	}
	return bundle
}

// dataText returns the flattened text of one mime entry.
func (o Output) dataText(mime string) (string, bool) {
	bundle := o.data()
	raw, ok := bundle[mime]
	if !ok {
		return "", false
	}
	var text MultilineText
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false
	}
	return text.String(), true
}

// DataKeys lists the mime keys of the output's data bundle in the order
// they appear in the JSON. Bundle order is the kernel's preference order,
// so it decides which binary entry save-output extracts.
func (o Output) DataKeys() []string {
	raw, ok := o["data"]
	if !ok {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return keys
		}
		keys = append(keys, key)
	}
	return keys
}

// isBinaryMime reports whether a mime key holds base64 binary payload.
func isBinaryMime(key string) bool {
	return strings.HasPrefix(key, "image/") || key == "application/pdf"
}

// BinaryKeys lists the binary mime keys of the output in bundle order.
func (o Output) BinaryKeys() []string {
	var keys []string
	for _, k := range o.DataKeys() {
		if isBinaryMime(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// HasImage reports whether the output carries an image/* entry.
func (o Output) HasImage() bool {
	for _, k := range o.DataKeys() {
		if strings.HasPrefix(k, "image/") {
			return true
		}
	}
	return false
}

// BinaryData decodes the base64 payload of the first binary mime entry in
// bundle order. The value may be a flat string or an array of chunks,
// possibly broken by newlines.
func (o Output) BinaryData() (key string, data []byte, err error) {
	keys := o.BinaryKeys()
	if len(keys) == 0 {
		return "", nil, fmt.Errorf("no binary payload")
	}
	key = keys[0]

	var chunks MultilineText
	if err := json.Unmarshal(o.data()[key], &chunks); err != nil {
		return "", nil, fmt.Errorf("decoding %s payload: %w", key, err)
	}
	b64 := strings.ReplaceAll(chunks.String(), "\n", "")
	data, err = base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, fmt.Errorf("decoding %s base64: %w", key, err)
	}
	return key, data, nil
}

// ExtractBinary locates and decodes the binary payload of one output of one
// cell, with typed bounds and availability errors.
func (d *Document) ExtractBinary(cellIndex, outputIndex int) (string, []byte, error) {
	cell, err := d.Cell(cellIndex)
	if err != nil {
		return "", nil, err
	}
	if outputIndex < 0 || outputIndex >= len(cell.Outputs) {
		return "", nil, &types.OutputError{Cell: cellIndex, Index: outputIndex, Total: len(cell.Outputs)}
	}

	out := cell.Outputs[outputIndex]
	if len(out.BinaryKeys()) == 0 {
		return "", nil, &types.OutputError{
			Cell:  cellIndex,
			Index: outputIndex,
			Total: len(cell.Outputs),
			Keys:  out.DataKeys(),
		}
	}
	return out.BinaryData()
}

// FormatOutputs renders a cell's outputs as the numbered text blocks shown
// by read --include-output and written by read --to-file.
func FormatOutputs(outputs []Output) string {
	var lines []string
	for i, out := range outputs {
		outputType := out.Type()
		lines = append(lines, fmt.Sprintf("--- Output %d (%s) ---", i, outputType))

		switch outputType {
		case "stream":
			lines = append(lines, strings.TrimRight(out.Text(), " \t\r\n"))
		case "execute_result", "display_data":
			plain, hasPlain := out.dataText("text/plain")
			if hasPlain {
				lines = append(lines, strings.TrimRight(plain, " \t\r\n"))
			}
			binary := out.BinaryKeys()
			for _, key := range binary {
				lines = append(lines, fmt.Sprintf("[BINARY DATA DETECTED: %s]", key))
				lines = append(lines, "(Use 'save-output' command to extract this data)")
			}
			if !hasPlain && len(binary) == 0 {
				lines = append(lines, fmt.Sprintf("[Complex Data: %v]", out.DataKeys()))
			}
		case "error":
			lines = append(lines, out.Text())
			var traceback []string
			json.Unmarshal(out["traceback"], &traceback)
			if len(traceback) > 0 {
				lines = append(lines, strings.Join(traceback, "\n"))
			}
		}

		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// Corpus flattens the document into the ordered text units the matcher
// scans: for each cell its source first, then each output in stored order.
func (d *Document) Corpus() []types.TextUnit {
	var corpus []types.TextUnit
	for i := range d.Cells {
		cell := &d.Cells[i]
		corpus = append(corpus, types.TextUnit{
			Cell:     i,
			Output:   -1,
			CellType: cell.Type,
			Text:     cell.Source.String(),
		})
		for j, out := range cell.Outputs {
			corpus = append(corpus, types.TextUnit{
				Cell:     i,
				Output:   j,
				CellType: cell.Type,
				Text:     out.Text(),
			})
		}
	}
	return corpus
}
