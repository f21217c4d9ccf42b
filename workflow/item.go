package workflow

import (
	"fmt"

	"alfredflow/commontypes"
)

// Item is a single selectable result. It is created by Workflow.Result and
// configured in place through chained setters. Only valid is set on a fresh
// item; every other field stays absent until a setter stores it.
type Item struct {
	uid          *string
	title        *string
	subtitle     *string
	arg          *string
	autocomplete *string
	quicklookurl *string
	kind         *string
	valid        bool
	icon         *commontypes.Icon
	mods         map[string]commontypes.Modifier
	text         *commontypes.Text
}

func newItem() *Item {
	return &Item{valid: true}
}

func strPtr(s string) *string {
	return &s
}

func (it *Item) UID(uid string) *Item {
	it.uid = strPtr(uid)
	return it
}

func (it *Item) Title(title string) *Item {
	it.title = strPtr(title)
	return it
}

func (it *Item) Subtitle(subtitle string) *Item {
	it.subtitle = strPtr(subtitle)
	return it
}

// Arg sets the payload passed to the next action when the item is selected.
func (it *Item) Arg(arg string) *Item {
	it.arg = strPtr(arg)
	return it
}

func (it *Item) Valid(valid bool) *Item {
	it.valid = valid
	return it
}

// Autocomplete sets the text that replaces the query when the item is tabbed.
func (it *Item) Autocomplete(text string) *Item {
	it.autocomplete = strPtr(text)
	return it
}

func (it *Item) QuickLookURL(url string) *Item {
	it.quicklookurl = strPtr(url)
	return it
}

// Type sets the item type as given. The host validates typed entries
// (a "file" must exist) before acting on them.
func (it *Item) Type(kind string) *Item {
	it.kind = strPtr(kind)
	return it
}

// TypeSkipCheck sets the item type with the skip-validation annotation.
func (it *Item) TypeSkipCheck(kind string) *Item {
	it.kind = strPtr(kind + commontypes.SkipCheckSuffix)
	return it
}

// Icon sets an image icon loaded from path.
func (it *Item) Icon(path string) *Item {
	it.icon = &commontypes.Icon{Path: path}
	return it
}

// FileIcon uses the icon of the file at path.
func (it *Item) FileIcon(path string) *Item {
	it.icon = &commontypes.Icon{Path: path, Kind: strPtr(commontypes.IconKindFileIcon)}
	return it
}

// FileTypeIcon uses the icon registered for a file type, e.g. "public.folder".
func (it *Item) FileTypeIcon(fileType string) *Item {
	it.icon = &commontypes.Icon{Path: fileType, Kind: strPtr(commontypes.IconKindFileType)}
	return it
}

// Mod adds or replaces a valid modifier under key.
func (it *Item) Mod(key, subtitle, arg string) *Item {
	return it.ModValid(key, subtitle, arg, true)
}

// ModValid adds or replaces the modifier under key with explicit validity.
func (it *Item) ModValid(key, subtitle, arg string, valid bool) *Item {
	if it.mods == nil {
		it.mods = make(map[string]commontypes.Modifier)
	}
	it.mods[key] = commontypes.Modifier{Subtitle: subtitle, Arg: arg, Valid: valid}
	return it
}

func (it *Item) Cmd(subtitle, arg string) *Item {
	return it.Mod(commontypes.ModCmd, subtitle, arg)
}

func (it *Item) Shift(subtitle, arg string) *Item {
	return it.Mod(commontypes.ModShift, subtitle, arg)
}

func (it *Item) Alt(subtitle, arg string) *Item {
	return it.Mod(commontypes.ModAlt, subtitle, arg)
}

func (it *Item) Ctrl(subtitle, arg string) *Item {
	return it.Mod(commontypes.ModCtrl, subtitle, arg)
}

func (it *Item) Fn(subtitle, arg string) *Item {
	return it.Mod(commontypes.ModFn, subtitle, arg)
}

// Copy sets the text copied when the user presses cmd+c on the item.
func (it *Item) Copy(text string) *Item {
	if it.text == nil {
		it.text = &commontypes.Text{}
	}
	it.text.Copy = strPtr(text)
	return it
}

// LargeType sets the text shown when the user presses cmd+l on the item.
func (it *Item) LargeType(text string) *Item {
	if it.text == nil {
		it.text = &commontypes.Text{}
	}
	it.text.LargeType = strPtr(text)
	return it
}

// Modifier returns the modifier stored under key.
func (it *Item) Modifier(key string) (commontypes.Modifier, bool) {
	m, ok := it.mods[key]
	return m, ok
}

// IconPath returns the icon path, or "" when no icon is set.
func (it *Item) IconPath() string {
	if it.icon == nil {
		return ""
	}
	return it.icon.Path
}

var stringSetters = map[string]func(*Item, string) *Item{
	FieldUID:          (*Item).UID,
	FieldTitle:        (*Item).Title,
	FieldSubtitle:     (*Item).Subtitle,
	FieldArg:          (*Item).Arg,
	FieldAutocomplete: (*Item).Autocomplete,
	FieldQuickLookURL: (*Item).QuickLookURL,
	FieldType:         (*Item).Type,
	FieldIcon:         (*Item).Icon,
	"copy":            (*Item).Copy,
	"largetype":       (*Item).LargeType,
}

// Set assigns a field by name from an untyped value, as decoded from config
// files or query strings. The item is left untouched when an error is returned.
func (it *Item) Set(field string, value any) error {
	if field == FieldValid {
		b, ok := value.(bool)
		if !ok {
			return &FieldError{Field: field, Err: fmt.Errorf("%w: want bool, got %T", ErrTypeMismatch, value)}
		}
		it.Valid(b)
		return nil
	}

	set, ok := stringSetters[field]
	if !ok {
		return &FieldError{Field: field, Err: ErrInvalidField}
	}
	s, ok := value.(string)
	if !ok {
		return &FieldError{Field: field, Err: fmt.Errorf("%w: want string, got %T", ErrTypeMismatch, value)}
	}
	set(it, s)
	return nil
}

// Get returns the string form of a sortable field and whether it is set.
// Unknown fields read as absent.
func (it *Item) Get(field string) (string, bool) {
	get, ok := accessors[field]
	if !ok {
		return "", false
	}
	return get(it)
}
