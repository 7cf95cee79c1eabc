package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

// RenderJSON writes v as indented JSON, colorized when color is set.
func RenderJSON(w io.Writer, v any, color bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	out := pretty.PrettyOptions(raw, &pretty.Options{Width: 80, Indent: "  "})
	if color {
		out = pretty.Color(out, nil)
	}
	_, err = w.Write(out)
	return err
}
