package workflow

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is the order in which Sort arranges items.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection validates a direction name. The empty string selects Asc.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case "":
		return Asc, nil
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidDirection, s, Asc, Desc)
	}
}

// Sort returns a new slice with items stably ordered by the string value of
// field. Absent and unknown fields compare as "". Desc inverts the comparison
// rather than the result, so ties keep their input order in both directions.
// Zero values select Asc and DefaultField.
func Sort(items []*Item, direction Direction, field string) ([]*Item, error) {
	return sortItems(items, direction, field, false)
}

type sortKey struct {
	key  string
	item *Item
}

func sortItems(items []*Item, direction Direction, field string, strict bool) ([]*Item, error) {
	dir, err := ParseDirection(string(direction))
	if err != nil {
		return nil, err
	}
	get, err := lookupField(field, strict)
	if err != nil {
		return nil, err
	}

	keyed := make([]sortKey, len(items))
	for i, it := range items {
		v, _ := get(it)
		keyed[i] = sortKey{key: v, item: it}
	}

	slices.SortStableFunc(keyed, func(a, b sortKey) int {
		c := strings.Compare(a.key, b.key)
		if dir == Desc {
			return -c
		}
		return c
	})

	sorted := make([]*Item, len(keyed))
	for i, k := range keyed {
		sorted[i] = k.item
	}
	return sorted, nil
}
