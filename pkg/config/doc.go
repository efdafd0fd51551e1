// Package config loads scheduling problem definitions from YAML.
//
// A problem file declares the scheduling horizon, the tasks with their
// timing constraints, the dependencies between tasks, the available
// resources, and the scheduler parameters. Load parses and validates a
// file; Problem.Build turns the declarative form into the scheduling
// block, resource pool, and scheduler settings the engine consumes.
package config
