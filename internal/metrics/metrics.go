// Package metrics exposes Prometheus counters and a Visitor implementation
// that drives them from a decode pass, the same way lightwalletd's gRPC
// server instruments request handling rather than leaving it unobserved.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/btcview/bitwire/wire"
)

// Collector holds every counter this package registers.
type Collector struct {
	BlocksDecoded       prometheus.Counter
	TransactionsDecoded prometheus.Counter
	InputsDecoded       prometheus.Counter
	OutputsDecoded      prometheus.Counter
	WitnessElements     prometheus.Counter
	DecodeErrors        *prometheus.CounterVec
}

// NewCollector builds a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		BlocksDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "blocks_decoded_total",
			Help:      "Number of block headers visited during decoding.",
		}),
		TransactionsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "transactions_decoded_total",
			Help:      "Number of transactions visited during decoding.",
		}),
		InputsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "inputs_decoded_total",
			Help:      "Number of transaction inputs visited.",
		}),
		OutputsDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "outputs_decoded_total",
			Help:      "Number of transaction outputs visited.",
		}),
		WitnessElements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "witness_elements_decoded_total",
			Help:      "Number of witness stack elements visited.",
		}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bitwire",
			Name:      "decode_errors_total",
			Help:      "Number of decode failures, labeled by error kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(
		c.BlocksDecoded,
		c.TransactionsDecoded,
		c.InputsDecoded,
		c.OutputsDecoded,
		c.WitnessElements,
		c.DecodeErrors,
	)
	return c
}

// ObserveError increments DecodeErrors under the failing operation's Kind,
// or under "unknown" if err did not come from the wire package.
func (c *Collector) ObserveError(err error) {
	kind := "unknown"
	if werr, ok := err.(*wire.Error); ok {
		kind = werr.Kind.String()
	}
	c.DecodeErrors.WithLabelValues(kind).Inc()
}

// Visitor drives a Collector's counters from a single decode pass. It embeds
// wire.NoopVisitor so it satisfies wire.Visitor while only overriding the
// callbacks it cares about.
type Visitor struct {
	wire.NoopVisitor
	collector *Collector
}

// NewVisitor returns a wire.Visitor that counts structural events into c.
func NewVisitor(c *Collector) *Visitor {
	return &Visitor{collector: c}
}

func (v *Visitor) VisitBlockHeader(*wire.BlockHeader) bool {
	v.collector.BlocksDecoded.Inc()
	return false
}

func (v *Visitor) VisitTransaction(_ uint64, _ *wire.Transaction) bool {
	v.collector.TransactionsDecoded.Inc()
	return false
}

func (v *Visitor) VisitTxIn(_ uint64, _ *wire.TxIn) bool {
	v.collector.InputsDecoded.Inc()
	return false
}

func (v *Visitor) VisitTxOut(_ uint64, _ *wire.TxOut) bool {
	v.collector.OutputsDecoded.Inc()
	return false
}

func (v *Visitor) VisitWitnessElement(_ uint64, _ []byte) bool {
	v.collector.WitnessElements.Inc()
	return false
}

var _ wire.Visitor = (*Visitor)(nil)
