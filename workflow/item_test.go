package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, it *Item) string {
	t.Helper()
	b, err := it.MarshalJSON()
	require.NoError(t, err)
	return string(b)
}

func TestItem_Icons(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Item) *Item
		want string
	}{
		{
			name: "plain icon has only path",
			set:  func(it *Item) *Item { return it.Icon("icon.png") },
			want: `{"icon":{"path":"icon.png"},"valid":true}`,
		},
		{
			name: "file icon",
			set:  func(it *Item) *Item { return it.FileIcon("/Applications/Mail.app") },
			want: `{"icon":{"path":"/Applications/Mail.app","type":"fileicon"},"valid":true}`,
		},
		{
			name: "file type icon",
			set:  func(it *Item) *Item { return it.FileTypeIcon("public.folder") },
			want: `{"icon":{"path":"public.folder","type":"filetype"},"valid":true}`,
		},
		{
			name: "last icon wins",
			set:  func(it *Item) *Item { return it.FileIcon("a").Icon("b") },
			want: `{"icon":{"path":"b"},"valid":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, marshal(t, tt.set(newItem())))
		})
	}
}

func TestItem_Mods(t *testing.T) {
	it := newItem().
		Shift("s", "S").
		Fn("f", "F").
		Cmd("c", "C").
		Alt("a", "A").
		Ctrl("x", "X").
		ModValid("cmd", "c2", "C2", false)

	want := `{"mods":{` +
		`"alt":{"arg":"A","subtitle":"a","valid":true},` +
		`"cmd":{"arg":"C2","subtitle":"c2","valid":false},` +
		`"ctrl":{"arg":"X","subtitle":"x","valid":true},` +
		`"fn":{"arg":"F","subtitle":"f","valid":true},` +
		`"shift":{"arg":"S","subtitle":"s","valid":true}` +
		`},"valid":true}`
	assert.Equal(t, want, marshal(t, it))

	m, ok := it.Modifier("cmd")
	require.True(t, ok)
	assert.False(t, m.Valid)
	_, ok = it.Modifier("hyper")
	assert.False(t, ok)
}

func TestItem_Text(t *testing.T) {
	assert.Equal(t, `{"text":{"largetype":"big"},"valid":true}`, marshal(t, newItem().LargeType("big")))
	assert.Equal(t, `{"text":{"copy":"c","largetype":"big"},"valid":true}`, marshal(t, newItem().LargeType("big").Copy("c")))
}

func TestItem_Set(t *testing.T) {
	t.Run("string fields", func(t *testing.T) {
		it := newItem()
		for _, f := range []string{"uid", "title", "subtitle", "arg", "autocomplete", "quicklookurl", "type", "icon", "copy", "largetype"} {
			require.NoError(t, it.Set(f, "v-"+f))
		}
		want := `{"arg":"v-arg","autocomplete":"v-autocomplete","icon":{"path":"v-icon"},` +
			`"quicklookurl":"v-quicklookurl","subtitle":"v-subtitle",` +
			`"text":{"copy":"v-copy","largetype":"v-largetype"},` +
			`"title":"v-title","type":"v-type","uid":"v-uid","valid":true}`
		assert.Equal(t, want, marshal(t, it))
	})

	t.Run("valid takes a bool", func(t *testing.T) {
		it := newItem()
		require.NoError(t, it.Set("valid", false))
		v, _ := it.Get("valid")
		assert.Equal(t, "false", v)
	})

	t.Run("non-bool valid is rejected", func(t *testing.T) {
		it := newItem()
		err := it.Set("valid", "no")
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, `{"valid":true}`, marshal(t, it))
	})

	t.Run("non-string title is rejected", func(t *testing.T) {
		it := newItem()
		err := it.Set("title", 42)
		require.ErrorIs(t, err, ErrTypeMismatch)

		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "title", fe.Field)
		assert.Equal(t, `{"valid":true}`, marshal(t, it))
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		err := newItem().Set("mods", "x")
		assert.ErrorIs(t, err, ErrInvalidField)
	})
}

func TestItem_Get(t *testing.T) {
	it := newItem().Title("t").Icon("i.png")

	v, ok := it.Get(FieldTitle)
	assert.True(t, ok)
	assert.Equal(t, "t", v)

	v, ok = it.Get(FieldIcon)
	assert.True(t, ok)
	assert.Equal(t, "i.png", v)

	_, ok = it.Get(FieldSubtitle)
	assert.False(t, ok)

	_, ok = it.Get("mods")
	assert.False(t, ok)

	assert.True(t, KnownField(FieldQuickLookURL))
	assert.False(t, KnownField("text"))
}
