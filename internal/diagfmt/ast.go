package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"zinc/internal/ast"
	"zinc/internal/format"
)

// ASTNodeOutput is one item of `zinc parse --format json`.
type ASTNodeOutput struct {
	Kind string   `json:"kind"`
	Name string   `json:"name,omitempty"`
	Line uint32   `json:"line,omitempty"`
	Col  uint32   `json:"col,omitempty"`
	Anns []string `json:"anns,omitempty"`
	Text string   `json:"text"`
}

// ModelOutput is the JSON document for a whole model or data file.
type ModelOutput struct {
	File  string          `json:"file"`
	Items []ASTNodeOutput `json:"items"`
	Count int             `json:"count"`
}

func itemKind(it ast.Item) (kind, name string) {
	kind = ast.Keyword(it)
	switch it := it.(type) {
	case *ast.Include:
		name = it.Path
	case *ast.Declare:
		name = it.Name
	case *ast.Assign:
		name = it.Name
	case *ast.Solve:
		kind += " " + it.Goal.String()
	}
	return kind, name
}

func outlineItem(it ast.Item) ASTNodeOutput {
	kind, name := itemKind(it)
	base := it.Base()
	out := ASTNodeOutput{
		Kind: kind,
		Name: name,
		Line: base.Start.Line,
		Col:  base.Start.Col,
		Text: format.Write(it, format.Options{Minify: true}),
	}
	for _, a := range base.Anns {
		out.Anns = append(out.Anns, format.Write(a, format.Options{Minify: true}))
	}
	return out
}

// firstLine collapses multi-line pretty output for the outline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// FormatASTPretty prints an item outline of m:
//
//	model.mzn
//	├─ Item[0]: include "globals.mzn" at 1:1
//	└─ Item[1]: constraint at 2:1
//	   └─ constraint x > 0
func FormatASTPretty(w io.Writer, m *ast.Model, path string) error {
	if _, err := fmt.Fprintln(w, path); err != nil {
		return err
	}
	for i, it := range m.Items {
		branch, prefix := "├─ ", "│  "
		if i == len(m.Items)-1 {
			branch, prefix = "└─ ", "   "
		}
		o := outlineItem(it)
		label := o.Kind
		if o.Name != "" {
			label += " " + o.Name
		}
		if o.Line > 0 {
			label += fmt.Sprintf(" at %d:%d", o.Line, o.Col)
		}
		fmt.Fprintf(w, "%sItem[%d]: %s\n", branch, i, label)
		fmt.Fprintf(w, "%s└─ %s\n", prefix, firstLine(format.Write(it, format.Options{})))
	}
	return nil
}

// FormatASTJSON writes the outline of m as JSON.
func FormatASTJSON(w io.Writer, m *ast.Model, path string) error {
	out := ModelOutput{File: path, Items: make([]ASTNodeOutput, 0, len(m.Items))}
	for _, it := range m.Items {
		out.Items = append(out.Items, outlineItem(it))
	}
	out.Count = len(out.Items)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// FormatDataPretty prints one `name = value` line per key in insertion order.
func FormatDataPretty(w io.Writer, d *ast.Data, path string) error {
	if _, err := fmt.Fprintln(w, path); err != nil {
		return err
	}
	i := 0
	for name, v := range d.All() {
		branch := "├─ "
		if i == d.Len()-1 {
			branch = "└─ "
		}
		fmt.Fprintf(w, "%s%s = %s\n", branch, name, firstLine(format.Write(v, format.Options{})))
		i++
	}
	return nil
}

// FormatDataJSON writes the data dictionary as JSON; values are minified text.
func FormatDataJSON(w io.Writer, d *ast.Data, path string) error {
	out := ModelOutput{File: path, Items: make([]ASTNodeOutput, 0, d.Len())}
	for name, v := range d.All() {
		out.Items = append(out.Items, ASTNodeOutput{
			Kind: "assign",
			Name: name,
			Line: v.Base().Start.Line,
			Col:  v.Base().Start.Col,
			Text: format.Write(v, format.Options{Minify: true}),
		})
	}
	out.Count = len(out.Items)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
