package camelapp

// Metrics is the projection shown on the Metrics tab.
type Metrics struct {
	// SLI is nil when the CamelApp reports no sliExchangeSuccessRate.
	SLI    *SuccessRate  `json:"sli,omitempty" yaml:"sli,omitempty"`
	Totals ExchangeCount `json:"totals" yaml:"totals"`
	Pods   []PodExchange `json:"pods,omitempty" yaml:"pods,omitempty"`
}

// SuccessRate mirrors status.sliExchangeSuccessRate.
type SuccessRate struct {
	Status            string `json:"status" yaml:"status"`
	SuccessPercentage string `json:"successPercentage,omitempty" yaml:"successPercentage,omitempty"`
	SamplingInterval  int64  `json:"samplingInterval,omitempty" yaml:"samplingInterval,omitempty"`
	Total             int64  `json:"samplingIntervalTotal" yaml:"samplingIntervalTotal"`
	Failed            int64  `json:"samplingIntervalFailed" yaml:"samplingIntervalFailed"`
	LastTimestamp     string `json:"lastTimestamp,omitempty" yaml:"lastTimestamp,omitempty"`
}

// ExchangeCount holds Camel exchange counters.
type ExchangeCount struct {
	Total     int64 `json:"total" yaml:"total"`
	Succeeded int64 `json:"succeeded" yaml:"succeeded"`
	Failed    int64 `json:"failed" yaml:"failed"`
	Pending   int64 `json:"pending" yaml:"pending"`
}

func (c *ExchangeCount) add(o ExchangeCount) {
	c.Total += o.Total
	c.Succeeded += o.Succeeded
	c.Failed += o.Failed
	c.Pending += o.Pending
}

// PodExchange holds the exchange counters of one pod.
type PodExchange struct {
	Pod           string `json:"pod" yaml:"pod"`
	ExchangeCount `json:",inline" yaml:",inline"`
	LastTimestamp string `json:"lastTimestamp,omitempty" yaml:"lastTimestamp,omitempty"`
}

// ExtractMetrics builds the Metrics projection of app. Pods without
// runtime.exchange are skipped; Totals sums the remaining pods.
func ExtractMetrics(app App) Metrics {
	var m Metrics

	if sli := mapAt(app.Object(), "status", "sliExchangeSuccessRate"); sli.Present {
		m.SLI = &SuccessRate{
			Status:            stringAt(sli.Value, "status").OrElse(""),
			SuccessPercentage: scalarStringAt(sli.Value, "successPercentage").OrElse(""),
			SamplingInterval:  int64At(sli.Value, "samplingInterval").OrElse(0),
			Total:             int64At(sli.Value, "samplingIntervalTotal").OrElse(0),
			Failed:            int64At(sli.Value, "samplingIntervalFailed").OrElse(0),
			LastTimestamp:     stringAt(sli.Value, "lastTimestamp").OrElse(""),
		}
	}

	for _, pod := range app.pods() {
		ex := mapAt(pod, "runtime", "exchange")
		if !ex.Present {
			continue
		}
		pe := PodExchange{
			Pod: stringAt(pod, "name").OrElse(""),
			ExchangeCount: ExchangeCount{
				Total:     int64At(ex.Value, "total").OrElse(0),
				Succeeded: int64At(ex.Value, "succeeded").OrElse(0),
				Failed:    int64At(ex.Value, "failed").OrElse(0),
				Pending:   int64At(ex.Value, "pending").OrElse(0),
			},
			LastTimestamp: stringAt(ex.Value, "lastTimestamp").OrElse(""),
		}
		m.Totals.add(pe.ExchangeCount)
		m.Pods = append(m.Pods, pe)
	}

	return m
}
