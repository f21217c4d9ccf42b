package workflow

import (
	"fmt"
	"strings"
)

// Filter returns the items whose field value contains query as a
// case-sensitive substring, in input order. query is converted with
// fmt.Sprint, so Filter(items, 45, "uid") matches a uid of "456".
// Absent fields read as "" and only match an empty query.
func Filter(items []*Item, query any, field string) []*Item {
	out, _ := filterItems(items, query, field, false)
	return out
}

func filterItems(items []*Item, query any, field string, strict bool) ([]*Item, error) {
	get, err := lookupField(field, strict)
	if err != nil {
		return nil, err
	}

	q := queryString(query)
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		v, _ := get(it)
		if strings.Contains(v, q) {
			out = append(out, it)
		}
	}
	return out, nil
}

func queryString(query any) string {
	switch q := query.(type) {
	case nil:
		return ""
	case string:
		return q
	default:
		return fmt.Sprint(q)
	}
}
