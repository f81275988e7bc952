package redaction

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/AegisProxy/aegis-sdk/internal/redaction")

var (
	redactionsTotal metric.Int64Counter
	cacheHits       metric.Int64Counter
	unredactMisses  metric.Int64Counter
	mappingsGauge   metric.Int64Gauge
)

func init() {
	var err error
	redactionsTotal, err = meter.Int64Counter("redaction.redactions.total",
		metric.WithDescription("New redaction mappings recorded"))
	if err != nil {
		redactionsTotal, _ = meter.Int64Counter("redaction.redactions.total.fallback")
	}

	cacheHits, err = meter.Int64Counter("redaction.cache.hits",
		metric.WithDescription("Redact calls resolved by an existing mapping"))
	if err != nil {
		cacheHits, _ = meter.Int64Counter("redaction.cache.hits.fallback")
	}

	unredactMisses, err = meter.Int64Counter("redaction.unredact.misses",
		metric.WithDescription("Unredact calls for unknown placeholders"))
	if err != nil {
		unredactMisses, _ = meter.Int64Counter("redaction.unredact.misses.fallback")
	}

	mappingsGauge, err = meter.Int64Gauge("redaction.mappings.count",
		metric.WithDescription("Current number of mappings in a store"))
	if err != nil {
		mappingsGauge, _ = meter.Int64Gauge("redaction.mappings.count.fallback")
	}
}

func redactionsAdd(ctx context.Context, n int64) {
	redactionsTotal.Add(ctx, n)
}

func cacheHitsAdd(ctx context.Context, n int64) {
	cacheHits.Add(ctx, n)
}

func unredactMissesAdd(ctx context.Context, n int64) {
	unredactMisses.Add(ctx, n)
}

func mappingsRecord(ctx context.Context, n int64) {
	mappingsGauge.Record(ctx, n)
}
