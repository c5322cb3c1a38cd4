package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
)

const namespace = "hire_notifier"

var states = []whatsapp.State{
	whatsapp.StateDisconnected,
	whatsapp.StateInitializing,
	whatsapp.StateAwaitingPairing,
	whatsapp.StateConnected,
}

// Metrics holds the Prometheus collectors of the notifier.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	NotificationsCreated prometheus.Counter
	ChannelDeliveries    *prometheus.CounterVec
	WhatsAppMessages     *prometheus.CounterVec
	WhatsAppState        *prometheus.GaugeVec
	EventsConsumed       *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		NotificationsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Total number of persisted notification records",
		}),
		ChannelDeliveries: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "channel_deliveries_total",
				Help:      "Delivery attempts per notification channel",
			},
			[]string{"channel", "outcome"},
		),
		WhatsAppMessages: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "whatsapp",
				Name:      "messages_total",
				Help:      "Outbound WhatsApp sends by outcome",
			},
			[]string{"outcome"},
		),
		WhatsAppState: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "whatsapp",
				Name:      "state",
				Help:      "1 for the current lifecycle state of the WhatsApp client",
			},
			[]string{"state"},
		),
		EventsConsumed: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_consumed_total",
				Help:      "Domain events handled by the trigger workers",
			},
			[]string{"type", "outcome"},
		),
	}
}

func (m *Metrics) ObserveNotification() {
	if m == nil {
		return
	}
	m.NotificationsCreated.Inc()
}

func (m *Metrics) ObserveDelivery(channel, outcome string) {
	if m == nil {
		return
	}
	m.ChannelDeliveries.WithLabelValues(channel, outcome).Inc()
}

func (m *Metrics) ObserveMessage(outcome string) {
	if m == nil {
		return
	}
	m.WhatsAppMessages.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveEvent(eventType, outcome string) {
	if m == nil {
		return
	}
	m.EventsConsumed.WithLabelValues(eventType, outcome).Inc()
}

// Broadcast records the lifecycle state carried by a status update.
func (m *Metrics) Broadcast(s whatsapp.Status) {
	if m == nil {
		return
	}
	for _, st := range states {
		v := 0.0
		if st.String() == s.State {
			v = 1
		}
		m.WhatsAppState.WithLabelValues(st.String()).Set(v)
	}
}
