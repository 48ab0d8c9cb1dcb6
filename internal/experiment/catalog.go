package experiment

import (
	"sort"
	"strings"

	"github.com/san-kum/vlab/internal/lab"
)

const (
	All = "all"

	SortPopular = "popular"
	SortAZ      = "a-z"
)

// Query selects and orders catalog entries. Empty fields act as "all" and
// the default sort is by popularity.
type Query struct {
	Category   string
	Difficulty string
	Sort       string
}

// Filter returns the entries matching q, ordered by q.Sort.
func Filter(infos []lab.Info, q Query) []lab.Info {
	out := make([]lab.Info, 0, len(infos))
	for _, info := range infos {
		if !matches(q.Category, info.Category) || !matches(q.Difficulty, string(info.Difficulty)) {
			continue
		}
		out = append(out, info)
	}

	switch q.Sort {
	case SortAZ:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity > out[j].Popularity
		})
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == All || strings.EqualFold(want, got)
}

// Categories lists the distinct categories in first-seen order.
func Categories(infos []lab.Info) []string {
	var out []string
	seen := make(map[string]bool)
	for _, info := range infos {
		if !seen[info.Category] {
			seen[info.Category] = true
			out = append(out, info.Category)
		}
	}
	return out
}
