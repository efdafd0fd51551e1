package block

// NDTask is a task with an extent on every scheduling axis. Axis 0 is the
// primary time axis, so Size() and SizeOnAxis(0) agree.
type NDTask struct {
	*BasicTask
	sizes []float64
}

// NewNDTask creates a multi-axis task. sizes[0] is the duration on the
// primary time axis; an empty slice yields a zero-duration task.
func NewNDTask(name string, sizes []float64) *NDTask {
	primary := 0.0
	if len(sizes) > 0 {
		primary = sizes[0]
	}
	return &NDTask{
		BasicTask: NewBasicTask(name, primary),
		sizes:     append([]float64(nil), sizes...),
	}
}

// Axes returns the number of axes the task has a size on.
func (t *NDTask) Axes() int {
	return len(t.sizes)
}

// SizeOnAxis returns the task's extent on the given axis, zero for axes
// beyond those defined.
func (t *NDTask) SizeOnAxis(axis int) float64 {
	if axis >= 0 && axis < len(t.sizes) {
		return t.sizes[axis]
	}
	return 0
}
