// Package workflow builds the result document a launcher host reads from a
// script filter: an ordered list of items serialized as sparse JSON with
// deterministic key order.
//
// A Workflow is not safe for concurrent use. Producers running in parallel
// should each fill their own Workflow and Merge them before output.
package workflow

import (
	"io"
)

// Option configures a Workflow.
type Option func(*Workflow)

// WithStrictFields makes Sort and Filter fail with ErrInvalidField on field
// names they cannot read, instead of treating them as empty.
func WithStrictFields() Option {
	return func(w *Workflow) {
		w.strict = true
	}
}

// Workflow owns an ordered sequence of items.
type Workflow struct {
	items  []*Item
	strict bool
}

func New(opts ...Option) *Workflow {
	w := &Workflow{items: []*Item{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result appends a new item with only valid set and returns it for
// chained configuration.
func (w *Workflow) Result() *Item {
	it := newItem()
	w.items = append(w.items, it)
	return it
}

// Sort reorders the items. On error the current order is kept.
func (w *Workflow) Sort(direction Direction, field string) error {
	sorted, err := sortItems(w.items, direction, field, w.strict)
	if err != nil {
		return err
	}
	w.items = sorted
	return nil
}

// Filter keeps only the items whose field contains query. On error the
// items are kept unchanged.
func (w *Workflow) Filter(query any, field string) error {
	kept, err := filterItems(w.items, query, field, w.strict)
	if err != nil {
		return err
	}
	w.items = kept
	return nil
}

// Merge moves the items of other to the end of w, leaving other empty.
func (w *Workflow) Merge(other *Workflow) {
	if other == nil || other == w {
		return
	}
	w.items = append(w.items, other.items...)
	other.items = []*Item{}
}

// Items returns the current sequence. The slice is a copy; the items are not.
func (w *Workflow) Items() []*Item {
	out := make([]*Item, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Workflow) Len() int {
	return len(w.items)
}

// MarshalJSON encodes the document {"items":[...]}.
func (w *Workflow) MarshalJSON() ([]byte, error) {
	items := w.items
	if items == nil {
		items = []*Item{}
	}
	return encode(document{Items: items})
}

// Output returns the serialized document. It reflects the current state of
// every item and does not modify the workflow.
func (w *Workflow) Output() (string, error) {
	b, err := w.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteTo writes the serialized document to wr.
func (w *Workflow) WriteTo(wr io.Writer) (int64, error) {
	b, err := w.MarshalJSON()
	if err != nil {
		return 0, err
	}
	n, err := wr.Write(b)
	return int64(n), err
}
