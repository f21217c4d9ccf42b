package workflow

import (
	"bytes"
	"encoding/json"
	"io"

	"alfredflow/commontypes"
)

// itemJSON is the wire form of an Item. Fields are declared in key order so
// the encoder emits them sorted; absent fields are nil and omitted.
type itemJSON struct {
	Arg          *string                         `json:"arg,omitempty"`
	Autocomplete *string                         `json:"autocomplete,omitempty"`
	Icon         *commontypes.Icon               `json:"icon,omitempty"`
	Mods         map[string]commontypes.Modifier `json:"mods,omitempty"`
	QuickLookURL *string                         `json:"quicklookurl,omitempty"`
	Subtitle     *string                         `json:"subtitle,omitempty"`
	Text         *commontypes.Text               `json:"text,omitempty"`
	Title        *string                         `json:"title,omitempty"`
	Type         *string                         `json:"type,omitempty"`
	UID          *string                         `json:"uid,omitempty"`
	Valid        bool                            `json:"valid"`
}

type document struct {
	Items []*Item `json:"items"`
}

func (it *Item) wire() itemJSON {
	w := itemJSON{
		Arg:          it.arg,
		Autocomplete: it.autocomplete,
		Icon:         it.icon,
		QuickLookURL: it.quicklookurl,
		Subtitle:     it.subtitle,
		Title:        it.title,
		Type:         it.kind,
		UID:          it.uid,
		Valid:        it.valid,
	}
	if len(it.mods) > 0 {
		w.Mods = it.mods
	}
	if !it.text.Empty() {
		w.Text = it.text
	}
	return w
}

// MarshalJSON encodes the item as a sparse object with lexicographically
// ordered keys at every level. Map keys (mods) are sorted by the encoder.
func (it *Item) MarshalJSON() ([]byte, error) {
	return encode(it.wire())
}

// encode marshals v without HTML escaping and without the encoder's
// trailing newline.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeTo(&buf, v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeTo(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
