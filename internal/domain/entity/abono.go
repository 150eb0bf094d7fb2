package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un abono.
const (
	EstadoPagoActivo    = "Activo"
	EstadoPagoPendiente = "Pendiente"
	EstadoPagoVencido   = "Vencido"
	EstadoPagoCancelado = "Cancelado"
)

// AbonoKey identifica un abono: playa, número de plaza y fecha de inicio.
type AbonoKey struct {
	PlayaID     string
	PlazaNro    int
	FechaInicio time.Time
}

// String devuelve la clave compuesta en formato playa/plaza/fecha (RFC3339).
func (k AbonoKey) String() string {
	return fmt.Sprintf("%s/%d/%s", k.PlayaID, k.PlazaNro, k.FechaInicio.Format(time.RFC3339))
}

// Abono representa la suscripción de una plaza de estacionamiento por un rango de fechas.
// FechaFin es nil para abonos sin fecha de finalización definida.
type Abono struct {
	PlayaID     string
	PlazaNro    int
	FechaInicio time.Time
	FechaFin    *time.Time
	Monto       decimal.Decimal
	EstadoPago  string // Activo, Pendiente, Vencido, Cancelado
	Periodos    []*PeriodoAbono
}

// Key devuelve la clave compuesta del abono.
func (a *Abono) Key() AbonoKey {
	return AbonoKey{PlayaID: a.PlayaID, PlazaNro: a.PlazaNro, FechaInicio: a.FechaInicio}
}

// Activo indica si el abono está al día.
func (a *Abono) Activo() bool {
	return a.EstadoPago == EstadoPagoActivo
}
