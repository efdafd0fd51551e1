package engine

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/VPRamon/virolai-sub000/pkg/block"
	"github.com/VPRamon/virolai-sub000/pkg/constraint"
	"github.com/VPRamon/virolai-sub000/pkg/interval"
	"github.com/VPRamon/virolai-sub000/pkg/schedule"
	"github.com/VPRamon/virolai-sub000/pkg/solution"
	"github.com/VPRamon/virolai-sub000/pkg/telemetry"
)

// DefaultEndangeredThreshold marks tasks that fit at most once as
// endangered.
const DefaultEndangeredThreshold = 1

// DefaultEpsilon is the cursor advance added after each placement. Intervals
// are closed, so without it the next placement could start exactly where the
// previous one ended and be rejected as touching.
const DefaultEpsilon = 1e-9

// Algorithm schedules tasks from one or more blocks within a horizon.
type Algorithm interface {
	// Schedule places tasks from the blocks into a fresh schedule, using
	// the solution space as the set of valid placements per task.
	Schedule(blocks []*block.SchedulingBlock, space *solution.Space, horizon interval.Interval) *schedule.Schedule
}

// ESTScheduler is a greedy earliest-start-time scheduler.
type ESTScheduler struct {
	threshold float64
	epsilon   float64
	log       zerolog.Logger
	metrics   *telemetry.Metrics
}

// Option configures an ESTScheduler.
type Option func(*ESTScheduler)

// WithEpsilon overrides the cursor advance added after each placement.
func WithEpsilon(epsilon float64) Option {
	return func(s *ESTScheduler) { s.epsilon = epsilon }
}

// WithLogger attaches a logger. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *ESTScheduler) { s.log = log }
}

// WithMetrics attaches a metrics collector.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *ESTScheduler) { s.metrics = m }
}

// NewESTScheduler creates a scheduler with the given endangered threshold.
// Tasks whose flexibility is strictly below the threshold are treated as
// endangered and scheduled eagerly.
func NewESTScheduler(threshold float64, opts ...Option) *ESTScheduler {
	s := &ESTScheduler{
		threshold: threshold,
		epsilon:   DefaultEpsilon,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefaultESTScheduler creates a scheduler with the default threshold.
func NewDefaultESTScheduler(opts ...Option) *ESTScheduler {
	return NewESTScheduler(DefaultEndangeredThreshold, opts...)
}

// Schedule implements Algorithm. Tasks from all blocks compete for the
// horizon; dynamic constraints on block edges are re-evaluated against the
// schedule as it grows. Tasks that cannot be placed are left out.
func (s *ESTScheduler) Schedule(blocks []*block.SchedulingBlock, space *solution.Space, horizon interval.Interval) *schedule.Schedule {
	started := time.Now()
	sched := schedule.New()
	candidates := collectCandidates(blocks)
	index := dynamicIndexFor(blocks)
	ctx := constraint.Context{Placements: sched}

	s.log.Debug().
		Int("candidates", len(candidates)).
		Str("horizon", horizon.String()).
		Msg("starting EST scheduling run")

	cursor := horizon.Start
	for len(candidates) > 0 && cursor < horizon.End {
		remaining := interval.Interval{Start: cursor, End: horizon.End}
		for _, c := range candidates {
			s.updateMetrics(c, space, index, remaining, ctx)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return compareCandidates(candidates[i], candidates[j], s.threshold) < 0
		})

		head := candidates[0]
		if head.IsImpossible() {
			break
		}
		candidates = candidates[1:]

		placement := head.Interval()
		if err := sched.Add(head.TaskID, placement); err != nil {
			// A dynamic constraint admitted an interval the schedule
			// rejects; drop the task rather than abort the run.
			dropErr := NewConflictError("placement rejected by schedule").
				WithTask(head.TaskID).
				WithCause(err)
			s.log.Warn().
				Str("task", head.TaskID).
				Str("interval", placement.String()).
				Err(dropErr).
				Msg("dropping unplaceable candidate")
			s.metrics.RecordTaskDropped()
			s.metrics.RecordError(string(dropErr.Class))
			continue
		}

		s.log.Debug().
			Str("task", head.TaskID).
			Str("interval", placement.String()).
			Float64("flexibility", head.Flexibility()).
			Msg("placed task")
		s.metrics.RecordTaskScheduled()

		cursor = placement.End + head.Task.GapAfter() + s.epsilon
	}

	s.log.Info().
		Int("placed", sched.Len()).
		Int("unplaced", len(candidates)).
		Msg("EST scheduling run finished")
	s.metrics.RecordSchedulingRun(sched.Len(), len(candidates), time.Since(started))

	return sched
}

// updateMetrics recomputes a candidate's EST, deadline, and flexibility
// against the remaining horizon, applying any dynamic constraints.
func (s *ESTScheduler) updateMetrics(c *Candidate, space *solution.Space, index *constraint.DynamicIndex, remaining interval.Interval, ctx constraint.Context) {
	static, ok := space.Intervals(c.TaskID)
	if !ok {
		c.hasEST = false
		c.hasDeadline = false
		c.flexibility = 0
		return
	}
	windows := index.ComputeEffectiveIntervals(c.TaskID, static, remaining, ctx).Intervals()
	size := c.Task.Size()
	c.est, c.hasEST = computeEST(windows, remaining, size)
	c.deadline, c.hasDeadline = computeDeadline(windows, remaining, size)
	c.flexibility = computeFlexibility(windows, remaining, size)
}

func collectCandidates(blocks []*block.SchedulingBlock) []*Candidate {
	var candidates []*Candidate
	for _, b := range blocks {
		for _, entry := range b.Tasks() {
			candidates = append(candidates, &Candidate{Task: entry.Task, TaskID: entry.ID})
		}
	}
	return candidates
}

func dynamicIndexFor(blocks []*block.SchedulingBlock) *constraint.DynamicIndex {
	var edges []constraint.Edge
	for _, b := range blocks {
		edges = append(edges, b.DynEdges()...)
	}
	return constraint.NewDynamicIndex(edges)
}
