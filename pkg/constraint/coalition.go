package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// Coalition expresses that a task needs a minimum number of resources per
// resource type to run at all, e.g. two large telescopes and one medium.
//
// Like ResourceFilter, a coalition does not constrain time: satisfaction is
// checked against the set of available resources, not against the axis.
type Coalition struct {
	requirements map[string]int
}

// NewCoalition builds a coalition from minimum counts per resource type.
// Types with non-positive counts are dropped.
func NewCoalition(requirements map[string]int) Coalition {
	reqs := make(map[string]int, len(requirements))
	for typ, count := range requirements {
		if count > 0 {
			reqs[typ] = count
		}
	}
	return Coalition{requirements: reqs}
}

// SingleType builds a coalition requiring count resources of one type.
func SingleType(resourceType string, count int) Coalition {
	return NewCoalition(map[string]int{resourceType: count})
}

// IsSatisfied reports whether the available counts meet every requirement.
// Extra resources and extra types are fine; a missing type counts as zero.
func (c Coalition) IsSatisfied(available map[string]int) bool {
	for typ, required := range c.requirements {
		if available[typ] < required {
			return false
		}
	}
	return true
}

// Deficit returns how many resources of each type are still missing. Types
// already satisfied are omitted, so a satisfied coalition yields an empty
// map.
func (c Coalition) Deficit(available map[string]int) map[string]int {
	deficit := make(map[string]int)
	for typ, required := range c.requirements {
		if missing := required - available[typ]; missing > 0 {
			deficit[typ] = missing
		}
	}
	return deficit
}

// TotalRequired returns the total resource count across all types.
func (c Coalition) TotalRequired() int {
	total := 0
	for _, count := range c.requirements {
		total += count
	}
	return total
}

// RequirementFor returns the minimum count for a type and whether the type
// is part of the coalition.
func (c Coalition) RequirementFor(resourceType string) (int, bool) {
	count, ok := c.requirements[resourceType]
	return count, ok
}

// Requirements returns a copy of the per-type minimum counts.
func (c Coalition) Requirements() map[string]int {
	reqs := make(map[string]int, len(c.requirements))
	for typ, count := range c.requirements {
		reqs[typ] = count
	}
	return reqs
}

// ComputeIntervals returns the full scheduling window. Coalitions restrict
// resource assignment, not time.
func (c Coalition) ComputeIntervals(window interval.Interval) interval.Set {
	return interval.NewSet(window)
}

// String renders the coalition as "Coalition(2xLST, 1xMST)" with types in
// sorted order.
func (c Coalition) String() string {
	types := make([]string, 0, len(c.requirements))
	for typ := range c.requirements {
		types = append(types, typ)
	}
	sort.Strings(types)
	parts := make([]string, len(types))
	for i, typ := range types {
		parts[i] = fmt.Sprintf("%dx%s", c.requirements[typ], typ)
	}
	return fmt.Sprintf("Coalition(%s)", strings.Join(parts, ", "))
}
