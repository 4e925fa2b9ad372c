// Package export publishes a probe report as Prometheus metrics, either
// through an HTTP exporter or as gathered metric families.
package export

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/srediag/shm-probe/pkg/probe"
)

const namespace = "shmprobe"

// FactsCollector exposes the numeric facts of a report as constant gauges
// named shmprobe_<section>_<fact>. Text facts become *_info gauges with the
// value carried in a label. Each section also reports
// shmprobe_section_up{section=...} so failed probes stay visible.
type FactsCollector struct {
	report *probe.Report
}

var _ prometheus.Collector = (*FactsCollector)(nil)

// NewFactsCollector wraps report for registration with a Prometheus
// registry. Layout facts are fixed per platform, so the collector serves
// the same values on every scrape.
func NewFactsCollector(report *probe.Report) *FactsCollector {
	return &FactsCollector{report: report}
}

// Describe implements prometheus.Collector.
func (c *FactsCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

// Collect implements prometheus.Collector.
func (c *FactsCollector) Collect(ch chan<- prometheus.Metric) {
	upDesc := prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "section", "up"),
		"Whether the section probe succeeded.",
		[]string{"section"}, nil,
	)
	for i := range c.report.Sections {
		sec := &c.report.Sections[i]
		up := 1.0
		if sec.Err != nil {
			up = 0
		}
		ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, up, sec.Name)
		for _, f := range sec.Facts {
			if f.Kind == probe.FactText {
				desc := prometheus.NewDesc(
					factMetricName(sec.Name, f.Name)+"_info",
					fmt.Sprintf("Text fact %s from the %s section.", f.Name, sec.Name),
					[]string{"value"}, nil,
				)
				ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, 1, f.Str)
				continue
			}
			desc := prometheus.NewDesc(
				factMetricName(sec.Name, f.Name),
				fmt.Sprintf("Fact %s (%s) from the %s section.", f.Name, f.Kind, sec.Name),
				nil, nil,
			)
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(f.Value))
		}
	}
}

func factMetricName(section, fact string) string {
	return prometheus.BuildFQName(namespace, section, strings.ToLower(fact))
}

// DumpFamilies gathers the report into client_model metric families, the
// same shape a scrape would produce, for programmatic consumers and tests.
func DumpFamilies(report *probe.Report) ([]*dto.MetricFamily, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(NewFactsCollector(report)); err != nil {
		return nil, fmt.Errorf("register facts collector: %w", err)
	}
	families, err := registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}
	return families, nil
}
