package commontypes

// Modifier keys recognized by the launcher. Items accept any key; these are
// the ones the host actually binds.
const (
	ModCmd   = "cmd"
	ModShift = "shift"
	ModAlt   = "alt"
	ModCtrl  = "ctrl"
	ModFn    = "fn"
)

// Icon kinds. An icon without a kind is loaded from Path as an image.
const (
	IconKindFileIcon = "fileicon" // use the icon of the file at Path
	IconKindFileType = "filetype" // use the icon for the UTI or extension in Path
)

// SkipCheckSuffix is appended to an item type to tell the host not to
// re-validate the entry (e.g. file existence) before acting on it.
const SkipCheckSuffix = ":skipcheck"

// Icon is the icon of a result item. Fields are declared in key order.
type Icon struct {
	Path string  `json:"path"`
	Kind *string `json:"type,omitempty"`
}

// Modifier overrides subtitle, arg and validity while its key is held.
type Modifier struct {
	Arg      string `json:"arg"`
	Subtitle string `json:"subtitle"`
	Valid    bool   `json:"valid"`
}

// Text holds the copy and large type overrides of a result item.
type Text struct {
	Copy      *string `json:"copy,omitempty"`
	LargeType *string `json:"largetype,omitempty"`
}

// Empty reports whether neither text override is set.
func (t *Text) Empty() bool {
	return t == nil || (t.Copy == nil && t.LargeType == nil)
}
