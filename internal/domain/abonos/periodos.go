package abonos

import (
	"math"
	"time"

	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MinutosPorDia convierte la duración del servicio (minutos) a días.
const MinutosPorDia = 1440

// DiasPorPeriodo calcula la longitud del período en días: ceil(DuracionMinutos / 1440).
// Si no hay servicio, o el servicio no tiene duración positiva, devuelve def.
func DiasPorPeriodo(servicio *entity.Servicio, def int) int {
	if servicio == nil || servicio.DuracionMinutos == nil || *servicio.DuracionMinutos <= 0 {
		return def
	}
	return int(math.Ceil(float64(*servicio.DuracionMinutos) / MinutosPorDia))
}

// DuracionDias devuelve la extensión del abono en días (fraccionarios). Sin fecha de fin vale 1.
// Se cuenta en días de calendario en la zona de inicio, la misma que usa AddDate para los límites,
// así un cambio de horario dentro del rango no agrega ni quita un período.
func DuracionDias(inicio time.Time, fin *time.Time) float64 {
	if fin == nil {
		return 1
	}
	f := fin.In(inicio.Location())
	y1, m1, d1 := inicio.Date()
	y2, m2, d2 := f.Date()
	dias := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)).Hours() / 24
	return dias + (horaDelDia(f)-horaDelDia(inicio)).Hours()/24
}

// horaDelDia es la hora de reloj de t como duración desde la medianoche local.
func horaDelDia(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// TotalPeriodos = max(1, ceil(duracionDias / diasPorPeriodo)).
func TotalPeriodos(duracionDias float64, diasPorPeriodo int) int {
	if diasPorPeriodo <= 0 {
		return 1
	}
	n := int(math.Ceil(duracionDias / float64(diasPorPeriodo)))
	if n < 1 {
		return 1
	}
	return n
}

// MontoEstimado es el monto por período cuando la playa no tiene tarifa: monto del abono / divisor,
// redondeado a 2 decimales.
func MontoEstimado(montoAbono decimal.Decimal, divisor int) decimal.Decimal {
	if divisor <= 0 {
		return montoAbono.Round(2)
	}
	return montoAbono.Div(decimal.NewFromInt(int64(divisor))).Round(2)
}

// GenerarPeriodos arma los períodos 1..N de un abono: ventanas contiguas de diasPorPeriodo días
// desde FechaInicio. Solo el período 1 de un abono Activo sale pagado, con FechaPago = FechaInicio.
func GenerarPeriodos(abono *entity.Abono, diasPorPeriodo int, monto decimal.Decimal) ([]*entity.PeriodoAbono, error) {
	if abono == nil {
		return nil, domain.ErrInvalidInput
	}
	if diasPorPeriodo <= 0 {
		return nil, domain.ErrInvalidPeriod
	}
	if monto.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if abono.FechaFin != nil && abono.FechaFin.Before(abono.FechaInicio) {
		return nil, domain.ErrInvalidDateRange
	}

	total := TotalPeriodos(DuracionDias(abono.FechaInicio, abono.FechaFin), diasPorPeriodo)
	periodos := make([]*entity.PeriodoAbono, 0, total)
	for i := 1; i <= total; i++ {
		inicio := abono.FechaInicio.AddDate(0, 0, (i-1)*diasPorPeriodo)
		pagado := abono.Activo() && i == 1
		var fechaPago *time.Time
		if pagado {
			fp := abono.FechaInicio
			fechaPago = &fp
		}
		periodos = append(periodos, &entity.PeriodoAbono{
			PlayaID:          abono.PlayaID,
			PlazaNro:         abono.PlazaNro,
			AbonoFechaInicio: abono.FechaInicio,
			NumeroPeriodo:    i,
			FechaInicio:      inicio,
			FechaFin:         inicio.AddDate(0, 0, diasPorPeriodo),
			Monto:            monto,
			Pagado:           pagado,
			FechaPago:        fechaPago,
		})
	}
	return periodos, nil
}
