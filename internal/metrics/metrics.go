package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
}

type Counters struct {
	Passes           Counter
	EntriesProcessed Counter
	EntriesSkipped   Counter
	ReportsPublished Counter

	HTTPRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loganalyzer",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func (p *PrometheusCounter) Add(v float64, labels ...string) {
	p.counter.WithLabelValues(labels...).Add(v)
}

func (p *PrometheusCounter) Vec() *prometheus.CounterVec {
	return p.counter
}

// New registers the counters on the default registry served by /metrics.
func New() *Counters {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Counters {
	return &Counters{
		Passes: NewPrometheusCounter(reg,
			"passes_total",
			"Number of analysis passes over the log source",
			[]string{"period", "status"},
		),
		EntriesProcessed: NewPrometheusCounter(reg,
			"entries_processed_total",
			"Number of log entries counted by analysis passes",
			[]string{"period"},
		),
		EntriesSkipped: NewPrometheusCounter(reg,
			"entries_skipped_total",
			"Number of malformed log lines dropped by analysis passes",
			[]string{"period"},
		),
		ReportsPublished: NewPrometheusCounter(reg,
			"reports_published_total",
			"Number of reports sent to the broker",
			[]string{"status"},
		),
		HTTPRequests: NewPrometheusCounter(reg,
			"http_requests_total",
			"Number of stats API requests",
			[]string{"handler", "status"},
		),
	}
}

// NewTestCounters uses a private registry, so tests can build as many
// Counters as they need.
func NewTestCounters() *Counters {
	return NewWithRegistry(prometheus.NewRegistry())
}
