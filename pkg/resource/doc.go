// Package resource models the schedulable resources tasks compete for and
// prepares per-resource solution spaces for the scheduling engine.
//
// A Resource carries its own constraint tree describing when it is
// available. The prescheduler combines task eligibility (resource filters on
// the task's constraint tree) with resource availability to build one
// solution space per resource, ready for engine.ScheduleByResource.
package resource
