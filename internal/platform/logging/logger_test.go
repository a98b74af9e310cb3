package logging

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Warn("sync task failed", "season_id", "season-12", "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["season_id"] != "season-12" {
		t.Fatalf("unexpected season_id field: %v", fields["season_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestLogger_OddArgsKeepsDanglingKey(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.Info("dangling", "only_key")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["only_key"]; !ok {
		t.Fatalf("expected dangling key to be kept, got %v", fields)
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "traced")

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}
