package timeline

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type metrics struct {
	fetched       metric.Int64Counter
	retained      metric.Int64Counter
	decoded       metric.Int64Counter
	skipped       metric.Int64Counter
	fetchFailures metric.Int64Counter
}

func newMetrics(meter metric.Meter) metrics {
	return metrics{
		fetched:       counter(meter, "transfer.records.fetched", "Transaction records returned by the source."),
		retained:      counter(meter, "transfer.records.retained", "Records calling a supported transfer method."),
		decoded:       counter(meter, "transfer.events.decoded", "Transfer events added to a timeline."),
		skipped:       counter(meter, "transfer.records.skipped", "Retained records left out of a timeline, by reason."),
		fetchFailures: counter(meter, "transfer.fetch.failures", "Failed transaction page requests."),
	}
}

// counter falls back to a no-op instrument so a misconfigured meter never
// stops a run.
func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit("{record}"))
	if err != nil {
		return noop.Int64Counter{}
	}

	return c
}
