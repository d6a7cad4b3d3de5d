package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/CircleCI-Public/repo-browser/api/repository"
)

type SortKey int

const (
	SortByName SortKey = iota
	SortByWatchers
	SortByForks
	SortByOpenIssues
	SortByUpdated
)

// SortKeys lists the keys in column order.
var SortKeys = []SortKey{SortByName, SortByWatchers, SortByForks, SortByOpenIssues, SortByUpdated}

var sortKeyNames = map[SortKey]string{
	SortByName:       "name",
	SortByWatchers:   "watchers",
	SortByForks:      "forks",
	SortByOpenIssues: "issues",
	SortByUpdated:    "updated",
}

func (k SortKey) String() string {
	if s, ok := sortKeyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

func ParseSortKey(s string) (SortKey, error) {
	for k, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sort key %q, expected one of name, watchers, forks, issues, updated", s)
}

type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// Directive is the active (key, direction) pair.
type Directive struct {
	Key       SortKey
	Direction Direction
}

// DefaultDirective puts the most watched repositories first.
var DefaultDirective = Directive{Key: SortByWatchers, Direction: Descending}

// Toggle flips the direction when key is already active, otherwise makes key
// active in descending order.
func (d Directive) Toggle(key SortKey) Directive {
	if d.Key != key {
		return Directive{Key: key, Direction: Descending}
	}
	if d.Direction == Descending {
		return Directive{Key: key, Direction: Ascending}
	}
	return Directive{Key: key, Direction: Descending}
}

type compareFunc func(a, b *repository.Repository) int

// comparators maps every SortKey to a constructor for its comparator.
var comparators = map[SortKey]func() compareFunc{
	SortByName:       compareNames,
	SortByWatchers:   byInt(func(r *repository.Repository) int { return r.WatchersCount }),
	SortByForks:      byInt(func(r *repository.Repository) int { return r.ForksCount }),
	SortByOpenIssues: byInt(func(r *repository.Repository) int { return r.OpenIssuesCount }),
	SortByUpdated:    compareUpdated,
}

// compareNames collates names for English. A fresh collator per sort since
// collators keep internal buffers.
func compareNames() compareFunc {
	c := collate.New(language.English)
	return func(a, b *repository.Repository) int {
		return c.CompareString(a.Name, b.Name)
	}
}

// compareUpdated orders by instant; unparseable timestamps are the zero
// instant and so equal to each other.
func compareUpdated() compareFunc {
	return func(a, b *repository.Repository) int {
		ta, _ := a.UpdatedTime()
		tb, _ := b.UpdatedTime()
		return ta.Compare(tb)
	}
}

func byInt(field func(*repository.Repository) int) func() compareFunc {
	return func() compareFunc {
		return func(a, b *repository.Repository) int {
			return cmp.Compare(field(a), field(b))
		}
	}
}

// Sort returns a stably sorted copy of repos. repos is left untouched.
func Sort(repos []repository.Repository, d Directive) []repository.Repository {
	sorted := slices.Clone(repos)

	newCompare, ok := comparators[d.Key]
	if !ok {
		return sorted
	}
	compare := newCompare()

	slices.SortStableFunc(sorted, func(a, b repository.Repository) int {
		c := compare(&a, &b)
		if d.Direction == Descending {
			return -c
		}
		return c
	})
	return sorted
}
