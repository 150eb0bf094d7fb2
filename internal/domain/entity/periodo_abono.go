package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodoAbono es un tramo facturable de un abono. Pertenece a un único abono
// (PlayaID, PlazaNro, AbonoFechaInicio) y se numera desde 1 sin huecos.
type PeriodoAbono struct {
	PlayaID          string
	PlazaNro         int
	AbonoFechaInicio time.Time
	NumeroPeriodo    int
	FechaInicio      time.Time
	FechaFin         time.Time
	Monto            decimal.Decimal
	Pagado           bool
	FechaPago        *time.Time // solo si Pagado
}

// AbonoKey devuelve la clave del abono dueño del período.
func (p *PeriodoAbono) AbonoKey() AbonoKey {
	return AbonoKey{PlayaID: p.PlayaID, PlazaNro: p.PlazaNro, FechaInicio: p.AbonoFechaInicio}
}
