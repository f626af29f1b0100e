package menu

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notebook/pkg/core"
)

// Format selects how WriteNotes renders a collection.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// displayLayout is the human-facing timestamp layout.
const displayLayout = "2006-01-02 15:04:05"

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// WriteNotes renders notes to w. JSON and YAML always emit an array, even when
// there are no notes; text prints NoNotesMessage instead.
func WriteNotes(w io.Writer, notes []core.Note, format Format) error {
	if notes == nil {
		notes = []core.Note{}
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(notes); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText, "":
		if len(notes) == 0 {
			_, err := fmt.Fprintln(w, NoNotesMessage)
			return err
		}
		for _, n := range notes {
			if err := writeNote(w, n); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// writeNote prints one note followed by a blank line.
func writeNote(w io.Writer, n core.Note) error {
	_, err := fmt.Fprintf(w, "[%d] %s: %s\nCreated: %s\nUpdated: %s\n\n",
		n.ID, n.Title, n.Body,
		displayTime(n.CreatedAt),
		displayTime(n.UpdatedAt),
	)
	return err
}

func displayTime(t core.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(displayLayout)
}
