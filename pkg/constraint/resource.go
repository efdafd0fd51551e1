package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// ResourceFilter restricts which resources a task may run on. A nil ID set
// means any resource ID is acceptable, and likewise for types; a filter with
// both sets nil matches everything.
//
// The filter does not constrain time: ComputeIntervals returns the full
// scheduling window. Resource eligibility is checked by the prescheduler
// through Matches when tasks are assigned to resources.
type ResourceFilter struct {
	allowedIDs   map[string]struct{}
	allowedTypes map[string]struct{}
}

// NewResourceFilter builds a filter from allowed resource IDs and types.
// Pass nil for either to leave that dimension unrestricted.
func NewResourceFilter(ids, types []string) ResourceFilter {
	return ResourceFilter{
		allowedIDs:   toSet(ids),
		allowedTypes: toSet(types),
	}
}

func toSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Matches reports whether a resource with the given ID and type satisfies
// the filter. A resource matches when its ID is allowed or its type is
// allowed; an unrestricted filter matches everything.
func (f ResourceFilter) Matches(id, resourceType string) bool {
	if f.allowedIDs == nil && f.allowedTypes == nil {
		return true
	}
	if _, ok := f.allowedIDs[id]; ok {
		return true
	}
	_, ok := f.allowedTypes[resourceType]
	return ok
}

// AllowedIDs returns the allowed resource IDs in sorted order, or nil when
// IDs are unrestricted.
func (f ResourceFilter) AllowedIDs() []string {
	return sortedKeys(f.allowedIDs)
}

// AllowedTypes returns the allowed resource types in sorted order, or nil
// when types are unrestricted.
func (f ResourceFilter) AllowedTypes() []string {
	return sortedKeys(f.allowedTypes)
}

func sortedKeys(set map[string]struct{}) []string {
	if set == nil {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ComputeIntervals returns the full scheduling window. Resource filters
// restrict placement via Matches, not via time.
func (f ResourceFilter) ComputeIntervals(window interval.Interval) interval.Set {
	return interval.NewSet(window)
}

func (f ResourceFilter) String() string {
	if f.allowedIDs == nil && f.allowedTypes == nil {
		return "Resource(any)"
	}
	var parts []string
	if ids := f.AllowedIDs(); ids != nil {
		parts = append(parts, "ids="+strings.Join(ids, "|"))
	}
	if types := f.AllowedTypes(); types != nil {
		parts = append(parts, "types="+strings.Join(types, "|"))
	}
	return fmt.Sprintf("Resource(%s)", strings.Join(parts, " "))
}
