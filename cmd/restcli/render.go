package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// parseParams decodes a JSON object of query parameters into the string map
// the client expects. Scalar values are stringified.
func parseParams(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("query parameters must be a JSON object: %w", err)
	}

	params := make(map[string]string, len(decoded))
	for k, v := range decoded {
		params[k] = fmt.Sprint(v)
	}
	return params, nil
}

// writeResult renders data in the requested format and writes it to
// outputPath, or to w when outputPath is empty.
func writeResult(w io.Writer, data any, format, outputPath string) error {
	rendered, err := render(data, format)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, rendered, 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		fmt.Fprintln(w, infoStyle.Render("Output saved to "+outputPath))
		return nil
	}

	_, err = w.Write(append(rendered, '\n'))
	return err
}

func render(data any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	case "table":
		return []byte(renderTable(data)), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected json, table or yaml)", format)
	}
}

// renderTable draws list-of-objects data as a table whose columns come from
// the first element; single objects become a key/value table. Anything else
// falls back to indented JSON.
func renderTable(data any) string {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	styleFunc := func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle.Padding(0, 1)
		}
		return cellStyle
	}

	switch v := data.(type) {
	case []any:
		first, ok := firstObject(v)
		if !ok {
			break
		}
		cols := sortedKeys(first)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(styleFunc).
			Headers(cols...)
		for _, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			row := make([]string, len(cols))
			for i, col := range cols {
				row[i] = fmt.Sprint(obj[col])
			}
			t = t.Row(row...)
		}
		return t.Render()

	case map[string]any:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(styleFunc).
			Headers("FIELD", "VALUE")
		for _, k := range sortedKeys(v) {
			t = t.Row(k, fmt.Sprint(v[k]))
		}
		return t.Render()
	}

	rendered, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprint(data)
	}
	return string(rendered)
}

func firstObject(items []any) (map[string]any, bool) {
	if len(items) == 0 {
		return nil, false
	}
	obj, ok := items[0].(map[string]any)
	return obj, ok
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
