/*
Package observability exports arbor's reporter events as Prometheus metrics.

Metrics is a report.Reporter, so it can be combined with any other sink:

	reg := prometheus.NewRegistry()
	m, _ := observability.NewMetrics(reg)
	b := builder.New(builder.WithReporter(report.Multi(m, report.NewConsole(os.Stdout))))
*/
package observability
