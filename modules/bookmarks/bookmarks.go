// Package bookmarks matches the query against a configured list of links.
package bookmarks

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"alfredflow/config"
	"alfredflow/workflow"
)

const defaultIconPath = "https://img.icons8.com/badges/100/bookmark.png"

type BookmarksModule struct {
	entries     []config.Bookmark
	iconPath    string
	filterField string
}

func NewBookmarksModule(cfg config.BookmarksConfig) *BookmarksModule {
	iconPath := cfg.Icon
	if iconPath == "" {
		iconPath = defaultIconPath
	}
	filterField := cfg.FilterField
	if filterField == "" {
		filterField = workflow.DefaultField
	}
	return &BookmarksModule{
		entries:     cfg.Entries,
		iconPath:    iconPath,
		filterField: filterField,
	}
}

func (m *BookmarksModule) Name() string {
	return "Bookmarks"
}

func (m *BookmarksModule) DefaultIconPath() string {
	return m.iconPath
}

// ProcessQuery adds every bookmark and keeps those whose filter field
// contains the query.
func (m *BookmarksModule) ProcessQuery(ctx context.Context, query string, wf *workflow.Workflow) error {
	query = strings.TrimSpace(query)
	if query == "" || len(m.entries) == 0 {
		return nil
	}

	for _, b := range m.entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.addEntry(wf, b)
	}

	if err := wf.Filter(query, m.filterField); err != nil {
		return fmt.Errorf("filtering bookmarks on %q: %w", m.filterField, err)
	}
	return nil
}

func (m *BookmarksModule) addEntry(wf *workflow.Workflow, b config.Bookmark) {
	it := wf.Result().
		UID(entryUID(b)).
		Title(b.Title).
		Autocomplete(b.Title)

	if b.Subtitle != "" {
		it.Subtitle(b.Subtitle)
	} else if b.URL != "" {
		it.Subtitle(b.URL)
	}

	if b.URL != "" {
		it.Arg(b.URL).
			QuickLookURL(b.URL).
			Copy(b.URL).
			Cmd("Copy link", b.URL)
	} else {
		it.Valid(false)
	}

	path, isFile := strings.CutPrefix(b.URL, "file://")
	switch {
	case b.Icon != "":
		it.Icon(b.Icon)
	case isFile:
		it.FileIcon(path)
	}

	kind := b.Type
	if isFile {
		it.Arg(path)
		if kind == "" {
			kind = "file"
		}
	}
	switch {
	case kind == "":
	case b.SkipCheck:
		it.TypeSkipCheck(kind)
	default:
		it.Type(kind)
	}
}

// entryUID returns the configured uid, or one derived from the URL so the
// host can learn selection frequency across runs.
func entryUID(b config.Bookmark) string {
	if b.UID != "" {
		return b.UID
	}
	key := b.URL
	if key == "" {
		key = b.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}
