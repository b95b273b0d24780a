// Package listing assembles the bottle lists shown on collection, distillery
// and bottler pages.
package listing

import (
	"math/rand/v2"
	"net/url"
	"slices"
	"strings"

	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
)

const (
	methodFilter = "filter"
	methodRandom = "random"
)

// Filter is the state of the type filter form. A type missing from Types
// is unchecked.
type Filter struct {
	Types  map[model.BottleType]bool
	Random bool
}

// DefaultFilter is used on a fresh page load: every type active, no random
// pick.
func DefaultFilter() Filter {
	types := make(map[model.BottleType]bool, len(model.BottleTypes()))
	for _, bottleType := range model.BottleTypes() {
		types[bottleType] = true
	}

	return Filter{Types: types}
}

// ParseFilter reads the submitted filter form. The hidden "method" field
// tells a submitted form apart from a fresh load, so a form with every box
// unchecked selects nothing.
func ParseFilter(form url.Values) Filter {
	method := form.Get("method")
	if method != methodFilter && method != methodRandom {
		return DefaultFilter()
	}

	filter := Filter{Types: map[model.BottleType]bool{}, Random: method == methodRandom}

	for _, value := range form["type"] {
		if bottleType, ok := model.ParseBottleType(value); ok {
			filter.Types[bottleType] = true
		}
	}

	return filter
}

func (f Filter) Active(bottleType model.BottleType) bool {
	return f.Types[bottleType]
}

// Picker returns an index in [0, n).
type Picker func(n int) int

type Result struct {
	Bottles    []*model.Bottle
	HasKilled  bool
	HasPrivate bool
	Filter     Filter
}

// Assemble applies visibility, the type filter and the optional random pick
// to a collection. HasKilled and HasPrivate describe the visible collection
// before type filtering. A random pick never returns a killed bottle and is
// empty when only killed bottles match.
func Assemble(viewer *model.User, bottles []*model.Bottle, filter Filter, pick Picker) Result {
	if pick == nil {
		pick = rand.IntN
	}

	visible := policy.VisibleBottles(viewer, bottles)
	result := Result{Filter: filter, Bottles: []*model.Bottle{}}

	for _, bottle := range visible {
		result.HasKilled = result.HasKilled || bottle.IsKilled()
		result.HasPrivate = result.HasPrivate || bottle.IsPrivate

		if filter.Active(bottle.Type) {
			result.Bottles = append(result.Bottles, bottle)
		}
	}

	if filter.Random {
		result.Bottles = pickOne(result.Bottles, pick)
	}

	return result
}

func pickOne(bottles []*model.Bottle, pick Picker) []*model.Bottle {
	candidates := make([]*model.Bottle, 0, len(bottles))

	for _, bottle := range bottles {
		if !bottle.IsKilled() {
			candidates = append(candidates, bottle)
		}
	}

	if len(candidates) == 0 {
		return []*model.Bottle{}
	}

	return []*model.Bottle{candidates[pick(len(candidates))]}
}

// SortByName orders bottles by name using byte-wise comparison.
func SortByName(bottles []*model.Bottle) []*model.Bottle {
	sorted := slices.Clone(bottles)
	slices.SortStableFunc(sorted, func(a, b *model.Bottle) int {
		return strings.Compare(a.Name, b.Name)
	})

	return sorted
}
