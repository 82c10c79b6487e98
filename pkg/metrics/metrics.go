package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DebitsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealtab",
		Subsystem: "ledger",
		Name:      "debits_accepted_total",
		Help:      "Debits admitted against a credit limit.",
	})
	DebitsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealtab",
		Subsystem: "ledger",
		Name:      "debits_rejected_total",
		Help:      "Debits rejected because the credit limit would be exceeded.",
	})
	DuplicatesAbsorbed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealtab",
		Subsystem: "ledger",
		Name:      "duplicates_absorbed_total",
		Help:      "Ledger operations absorbed by an already-applied idempotency key.",
	})
	SettlementsVerified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealtab",
		Subsystem: "settlement",
		Name:      "verified_total",
		Help:      "Payment confirmations that passed signature verification.",
	})
	SettlementsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealtab",
		Subsystem: "settlement",
		Name:      "rejected_total",
		Help:      "Payment confirmations rejected for an invalid signature.",
	})
)
