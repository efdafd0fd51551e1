package engine

import (
	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
	"github.com/VPRamon/virolai-sub000/pkg/schedule"
	"github.com/VPRamon/virolai-sub000/pkg/solution"
)

// ScheduleByResource runs the algorithm once per resource, each against
// that resource's own solution space, and returns one schedule per resource
// ID. Runs are independent: a task appearing in several spaces may be
// placed on several resources.
func ScheduleByResource(alg Algorithm, blocks []*block.SchedulingBlock, spaces map[string]*solution.Space, horizon interval.Interval) map[string]*schedule.Schedule {
	schedules := make(map[string]*schedule.Schedule, len(spaces))
	for resourceID, space := range spaces {
		schedules[resourceID] = alg.Schedule(blocks, space, horizon)
	}
	return schedules
}
