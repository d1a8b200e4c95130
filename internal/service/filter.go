package service

import (
	"strconv"
	"strings"

	"questshare/internal/model"
)

// MaterialFilter narrows an already-fetched slice of materials. Empty values
// and the literal "all" are wildcards. All four predicates are conjunctive.
type MaterialFilter struct {
	Search     string
	Department string
	Semester   string
	Subject    string
}

func wildcard(v string) bool {
	return v == "" || v == "all"
}

// ApplyFilter returns the subsequence of items matching f, preserving input
// order. It never mutates its input; filtering twice with the same filter is
// a no-op on the result.
func ApplyFilter(items []model.Material, f MaterialFilter) []model.Material {
	search := strings.ToLower(f.Search)

	out := make([]model.Material, 0, len(items))
	for _, m := range items {
		if search != "" && !strings.Contains(strings.ToLower(m.Title), search) {
			continue
		}
		if !wildcard(f.Department) && m.Department != f.Department {
			continue
		}
		if !wildcard(f.Semester) && strconv.Itoa(m.Semester) != f.Semester {
			continue
		}
		if !wildcard(f.Subject) && m.Subject != f.Subject {
			continue
		}
		out = append(out, m)
	}
	return out
}
