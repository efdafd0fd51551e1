// Package telemetry provides logging, tracing, metrics, and event
// publishing for the scheduler.
//
// # Components
//
//   - Logger: structured logging via zerolog, with helpers for the
//     scheduling domain (run IDs, task IDs, resources)
//   - Tracer: OpenTelemetry tracing for scheduling runs
//   - Metrics: Prometheus metrics for runs, placements, and errors
//   - EventPublisher: in-process pub/sub for scheduling events
//
// # Usage
//
// Create everything from one configuration:
//
//	cfg := telemetry.DefaultConfig()
//	tel, err := telemetry.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	log := tel.Logger.WithRunID(runID)
//	log.Info("scheduling run starting")
//
// Every component degrades to a no-op when disabled in the configuration,
// so library and engine code can record unconditionally.
package telemetry
