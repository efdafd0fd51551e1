package telemetry

import (
	"context"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default valid", func(*Config) {}, false},
		{"missing service name", func(c *Config) { c.ServiceName = "" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad exporter", func(c *Config) { c.Tracing.Enabled = true; c.Tracing.Exporter = "jaeger" }, true},
		{"bad sampling rate", func(c *Config) { c.Tracing.SamplingRate = 1.5 }, true},
		{"bad buffer size", func(c *Config) { c.Events.Enabled = true; c.Events.BufferSize = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetrics_DisabledIsNoOp(t *testing.T) {
	m, err := NewMetrics(MetricsConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	// None of these may panic.
	m.RecordTaskScheduled()
	m.RecordTaskDropped()
	m.RecordSchedulingRun(3, 1, time.Second)
	m.RecordError("internal")
	if m.Handler() != nil {
		t.Error("Expected nil handler when disabled")
	}

	var nilMetrics *Metrics
	nilMetrics.RecordTaskScheduled()
	nilMetrics.RecordSchedulingRun(0, 0, 0)
}

func TestMetrics_EnabledRegisters(t *testing.T) {
	m, err := NewMetrics(MetricsConfig{
		Enabled:       true,
		ListenAddress: ":0",
		Path:          "/metrics",
		Namespace:     "test",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	m.RecordTaskScheduled()
	m.RecordSchedulingRun(1, 0, 10*time.Millisecond)
	if m.Handler() == nil {
		t.Error("Expected a metrics handler")
	}
}

func TestEventPublisher_SyncDelivery(t *testing.T) {
	ep, err := NewEventPublisher(EventsConfig{Enabled: true, BufferSize: 10, EnableAsync: false})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var got []Event
	ep.Subscribe(func(e Event) { got = append(got, e) })
	ep.Publish(Event{Type: EventTypeTaskPlaced, TaskID: "t1"})

	if len(got) != 1 || got[0].TaskID != "t1" {
		t.Fatalf("Expected one delivered event, got %v", got)
	}
	if got[0].ID == "" || got[0].Timestamp.IsZero() {
		t.Error("Expected ID and timestamp to be filled in")
	}
}

func TestEventPublisher_DisabledDrops(t *testing.T) {
	ep, _ := NewEventPublisher(EventsConfig{Enabled: false})
	delivered := false
	ep.Subscribe(func(Event) { delivered = true })
	ep.Publish(Event{Type: EventTypeRunStarted})
	if delivered {
		t.Error("Expected disabled publisher to drop events")
	}
	if err := ep.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected nil shutdown, got: %v", err)
	}
}

func TestLogger_ComponentAndFields(t *testing.T) {
	log := NopLogger().NewComponentLogger("engine").WithRunID("r1").WithTaskID("t1")
	// Must not panic on a no-op logger.
	log.Debug("metrics updated")
	log.Infof("placed %d tasks", 3)
}

func TestNew_BuildsAllComponents(t *testing.T) {
	cfg := DefaultConfig()
	tel, err := New(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if tel.Logger == nil || tel.Tracer == nil || tel.Metrics == nil || tel.Events == nil {
		t.Error("Expected all components to be built")
	}
	ctx := tel.WithContext(context.Background())
	if FromTelemetryContext(ctx) != tel {
		t.Error("Expected telemetry round-trip through context")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got: %v", err)
	}
}
