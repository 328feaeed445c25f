package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/puntoventa/bodega-api/internal/application/inventory"
)

var _ inventory.Metrics = (*Prometheus)(nil)

// Prometheus contadores del motor de inventario expuestos en /metrics.
type Prometheus struct {
	movements         *prometheus.CounterVec
	transfers         prometheus.Counter
	transferItems     prometheus.Counter
	insufficientStock prometheus.Counter
}

// New registra los contadores en el registry por defecto.
func New() *Prometheus {
	return &Prometheus{
		movements: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_movements_total",
			Help: "Movimientos de inventario aplicados, por tipo.",
		}, []string{"type"}),
		transfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_transfers_total",
			Help: "Transferencias completadas entre bodegas.",
		}),
		transferItems: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_transfer_items_total",
			Help: "Líneas de producto movidas en transferencias.",
		}),
		insufficientStock: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inventory_insufficient_stock_total",
			Help: "Operaciones rechazadas por stock insuficiente.",
		}),
	}
}

// MovementApplied cuenta un movimiento aplicado por tipo.
func (m *Prometheus) MovementApplied(movementType string) {
	m.movements.WithLabelValues(movementType).Inc()
}

// TransferCompleted cuenta una transferencia y sus líneas.
func (m *Prometheus) TransferCompleted(items int) {
	m.transfers.Inc()
	m.transferItems.Add(float64(items))
}

// InsufficientStock cuenta un rechazo por saldo insuficiente.
func (m *Prometheus) InsufficientStock() {
	m.insufficientStock.Inc()
}
