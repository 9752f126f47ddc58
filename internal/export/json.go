package export

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes records to w as an indented JSON array.
func WriteJSON(w io.Writer, records []PlanetRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
