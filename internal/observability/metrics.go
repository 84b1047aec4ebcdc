// Package observability содержит Prometheus-метрики сервиса записи на активности.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Исходы операций над составом активности.
const (
	OutcomeSuccess            = "success"
	OutcomeActivityNotFound   = "activity_not_found"
	OutcomeAlreadySignedUp    = "already_signed_up"
	OutcomeParticipantMissing = "participant_not_found"
	OutcomeInvalid            = "invalid"
	OutcomeError              = "error"
)

var (
	enrollCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_signup",
		Name:      "enrollments_total",
		Help:      "Number of signup attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	withdrawCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_signup",
		Name:      "withdrawals_total",
		Help:      "Number of unregister attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_signup",
		Name:      "roster_size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(enrollCounter, withdrawCounter, rosterSizeGauge)
}

// RecordEnroll учитывает попытку записи. Для неизвестных активностей имя не попадает в метки,
// чтобы клиенты не могли раздувать кардинальность.
func RecordEnroll(activity, outcome string) {
	enrollCounter.WithLabelValues(activityLabel(activity, outcome), outcome).Inc()
}

// RecordWithdraw учитывает попытку отписки.
func RecordWithdraw(activity, outcome string) {
	withdrawCounter.WithLabelValues(activityLabel(activity, outcome), outcome).Inc()
}

// SetRosterSize выставляет текущий размер состава активности.
func SetRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

func activityLabel(activity, outcome string) string {
	if outcome == OutcomeActivityNotFound || outcome == OutcomeInvalid {
		return "unknown"
	}
	return activity
}
