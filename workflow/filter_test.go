package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	items := makeItems("Item Title", "456", "Other", "123", "", "789", "item lower", "45")

	tests := []struct {
		name  string
		query any
		field string
		want  []string
	}{
		{name: "numeric query", query: 45, field: FieldUID, want: []string{"456", "45"}},
		{name: "substring of title", query: "Title", field: FieldTitle, want: []string{"456"}},
		{name: "case sensitive", query: "item", field: FieldTitle, want: []string{"45"}},
		{name: "default field is title", query: "Other", field: "", want: []string{"123"}},
		{name: "empty query keeps everything", query: "", field: FieldTitle, want: []string{"456", "123", "789", "45"}},
		{name: "nil query keeps everything", query: nil, field: FieldTitle, want: []string{"456", "123", "789", "45"}},
		{name: "absent field excluded", query: "e", field: FieldTitle, want: []string{"456", "123", "45"}},
		{name: "unknown field matches only empty", query: "x", field: "nope", want: []string{}},
		{name: "no match", query: "zzz", field: FieldTitle, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.query, tt.field)
			assert.Equal(t, tt.want, uids(got))
		})
	}
}

func TestFilter_IsSubsetInOrder(t *testing.T) {
	items := makeItems("ab", "1", "b", "2", "cab", "3")
	got := Filter(items, "b", FieldTitle)

	assert.Len(t, got, 3)
	for i := range got {
		assert.Same(t, items[i], got[i])
	}
}

func TestFilter_ByIconPath(t *testing.T) {
	items := []*Item{
		newItem().UID("1").Icon("icons/app.png"),
		newItem().UID("2").FileIcon("/Applications/Safari.app"),
		newItem().UID("3"),
	}
	assert.Equal(t, []string{"2"}, uids(Filter(items, ".app", FieldIcon)))
}
