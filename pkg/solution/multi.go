package solution

import (
	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
)

// PrimaryAxis is the time axis every task has a size on.
const PrimaryAxis = 0

// MultiSpace holds one solution space per scheduling axis. Axis 0 is the
// primary time axis and always agrees with the single-axis Populate.
type MultiSpace struct {
	spaces []*Space
}

// PopulateMulti builds one space per axis window. Tasks implementing
// block.MultiAxisTask contribute their per-axis sizes; plain tasks occupy
// the primary axis only and are treated as points on the others.
func PopulateMulti(blocks []*block.SchedulingBlock, windows []interval.Interval) *MultiSpace {
	spaces := make([]*Space, len(windows))
	for axis, window := range windows {
		space := NewSpace()
		for _, b := range blocks {
			for _, entry := range b.Tasks() {
				space.Set(entry.ID, taskIntervals(entry.Task, sizeOnAxis(entry.Task, axis), window))
			}
		}
		spaces[axis] = space
	}
	return &MultiSpace{spaces: spaces}
}

func sizeOnAxis(task block.Task, axis int) float64 {
	if nd, ok := task.(block.MultiAxisTask); ok {
		return nd.SizeOnAxis(axis)
	}
	if axis == PrimaryAxis {
		return task.Size()
	}
	return 0
}

// Axes returns the number of axes.
func (m *MultiSpace) Axes() int {
	return len(m.spaces)
}

// Axis returns the space for one axis.
func (m *MultiSpace) Axis(axis int) *Space {
	return m.spaces[axis]
}

// Primary returns the space for the primary time axis.
func (m *MultiSpace) Primary() *Space {
	return m.spaces[PrimaryAxis]
}

// CanPlace reports whether a task fits at the given per-axis positions, one
// position per axis.
func (m *MultiSpace) CanPlace(taskID string, positions []float64, task block.Task) bool {
	if len(positions) != len(m.spaces) {
		return false
	}
	for axis, space := range m.spaces {
		if !space.CanPlace(taskID, positions[axis], sizeOnAxis(task, axis)) {
			return false
		}
	}
	return true
}
