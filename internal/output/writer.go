package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the classification of one batch input line.
type Result struct {
	Index     int    `json:"index"`
	FEN       string `json:"fen"`
	Outcome   string `json:"outcome,omitempty"`
	InCheck   bool   `json:"inCheck"`
	MoveCount int    `json:"moveCount"`
	Error     string `json:"error,omitempty"`
}

// ResultWriter is the interface for writing batch results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one tab-separated line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes "index<TAB>outcome<TAB>fen", with the error in place
// of the outcome for lines that could not be classified.
func (tw *TextWriter) WriteResult(r Result) error {
	outcome := r.Outcome
	if r.Error != "" {
		outcome = "error: " + r.Error
	}
	_, err := fmt.Fprintf(tw.w, "%d\t%s\t%s\n", r.Index, outcome, r.FEN)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []Result `json:"results"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []Result
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]Result, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r Result) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}
	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
