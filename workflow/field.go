package workflow

import "strconv"

// Field names accepted by Sort, Filter, Item.Get and Item.Set.
const (
	FieldUID          = "uid"
	FieldTitle        = "title"
	FieldSubtitle     = "subtitle"
	FieldArg          = "arg"
	FieldAutocomplete = "autocomplete"
	FieldQuickLookURL = "quicklookurl"
	FieldType         = "type"
	FieldValid        = "valid"
	FieldIcon         = "icon"

	DefaultField = FieldTitle
)

type accessor func(*Item) (string, bool)

func optional(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}

var accessors = map[string]accessor{
	FieldUID:          func(it *Item) (string, bool) { return optional(it.uid) },
	FieldTitle:        func(it *Item) (string, bool) { return optional(it.title) },
	FieldSubtitle:     func(it *Item) (string, bool) { return optional(it.subtitle) },
	FieldArg:          func(it *Item) (string, bool) { return optional(it.arg) },
	FieldAutocomplete: func(it *Item) (string, bool) { return optional(it.autocomplete) },
	FieldQuickLookURL: func(it *Item) (string, bool) { return optional(it.quicklookurl) },
	FieldType:         func(it *Item) (string, bool) { return optional(it.kind) },
	FieldValid:        func(it *Item) (string, bool) { return strconv.FormatBool(it.valid), true },
	FieldIcon: func(it *Item) (string, bool) {
		if it.icon == nil {
			return "", false
		}
		return it.icon.Path, true
	},
}

func absent(*Item) (string, bool) { return "", false }

// lookupField resolves a field name. Unknown names read as absent unless
// strict is set, in which case they fail with ErrInvalidField.
func lookupField(field string, strict bool) (accessor, error) {
	if field == "" {
		field = DefaultField
	}
	if get, ok := accessors[field]; ok {
		return get, nil
	}
	if strict {
		return nil, &FieldError{Field: field, Err: ErrInvalidField}
	}
	return absent, nil
}

// KnownField reports whether field can be sorted or filtered on.
func KnownField(field string) bool {
	_, ok := accessors[field]
	return ok
}
