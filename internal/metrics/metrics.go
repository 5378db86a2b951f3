// Package metrics собирает Prometheus-метрики бизнес-операций площадки.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector регистрирует и инкрементирует счётчики бизнес-операций.
// Сервисы получают его через маленькие интерфейсы на стороне потребителя.
type Collector struct {
	paymentsRecorded   prometheus.Counter
	enrollments        *prometheus.CounterVec
	reviewsCreated     prometheus.Counter
	paymentTransitions *prometheus.CounterVec
}

// NewCollector создаёт Collector и регистрирует метрики в указанном регистре.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		paymentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_payments_recorded_total",
			Help: "Количество записанных платежей за курсы",
		}),
		enrollments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_enrollments_total",
			Help: "Количество запросов на запись по результату (enrolled, already_enrolled)",
		}, []string{"outcome"}),
		reviewsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_reviews_created_total",
			Help: "Количество созданных отзывов",
		}),
		paymentTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_payment_status_transitions_total",
			Help: "Количество переходов статуса платежа по целевому статусу",
		}, []string{"status"}),
	}
	reg.MustRegister(c.paymentsRecorded, c.enrollments, c.reviewsCreated, c.paymentTransitions)
	return c
}

// RecordPayment учитывает записанный платёж.
func (c *Collector) RecordPayment() {
	c.paymentsRecorded.Inc()
}

// RecordEnrollment учитывает результат запроса на запись.
func (c *Collector) RecordEnrollment(created bool) {
	outcome := "already_enrolled"
	if created {
		outcome = "enrolled"
	}
	c.enrollments.WithLabelValues(outcome).Inc()
}

// RecordReview учитывает созданный отзыв.
func (c *Collector) RecordReview() {
	c.reviewsCreated.Inc()
}

// RecordPaymentTransition учитывает переход платежа в новый статус.
func (c *Collector) RecordPaymentTransition(status string) {
	c.paymentTransitions.WithLabelValues(status).Inc()
}
