// internal/export/collector.go
// Package export publishes the decoded snapshot as Prometheus metrics.
package export

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector turns a snapshot source into gauges at scrape time. The field
// set varies with the connected controller family, so metrics are built
// per scrape instead of being pre-registered.
type Collector struct {
	source func() map[string]any
	model  func() string

	modelInfo *prometheus.Desc
}

func NewCollector(source func() map[string]any, model func() string) *Collector {
	return &Collector{
		source: source,
		model:  model,
		modelInfo: prometheus.NewDesc(
			"isg_model_info",
			"Connected heat pump model; value is always 1.",
			[]string{"model"},
			nil,
		),
	}
}

// Describe intentionally sends nothing: the metric set is dynamic.
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if model := c.model(); model != "" {
		ch <- prometheus.MustNewConstMetric(c.modelInfo, prometheus.GaugeValue, 1, model)
	}

	for field, v := range c.source() {
		var value float64
		switch x := v.(type) {
		case float64:
			value = x
		case int:
			value = float64(x)
		case bool:
			if x {
				value = 1
			}
		default:
			// Text fields such as the active error have no gauge form.
			continue
		}

		desc := prometheus.NewDesc(
			"isg_"+field,
			"Decoded ISG register "+field+".",
			nil,
			nil,
		)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, value)
	}
}
