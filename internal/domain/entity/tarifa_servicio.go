package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TarifaServicio es una entrada versionada en el tiempo de la lista de precios de una playa.
type TarifaServicio struct {
	ID         string
	PlayaID    string
	ServicioID string
	FechaDesde time.Time // inicio de vigencia
	Monto      decimal.Decimal
}
