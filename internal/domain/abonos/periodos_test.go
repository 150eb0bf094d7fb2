package abonos_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrInt(n int) *int { return &n }

func nuevoAbono(estado string, inicio time.Time, fin *time.Time) *entity.Abono {
	return &entity.Abono{
		PlayaID:     "playa-1",
		PlazaNro:    7,
		FechaInicio: inicio,
		FechaFin:    fin,
		Monto:       decimal.NewFromInt(300000),
		EstadoPago:  estado,
	}
}

// ── DiasPorPeriodo ────────────────────────────────────────────────────────────

func TestDiasPorPeriodo(t *testing.T) {
	casos := []struct {
		nombre   string
		servicio *entity.Servicio
		esperado int
	}{
		{"sin servicio usa default", nil, 1},
		{"servicio sin duración usa default", &entity.Servicio{Nombre: "Abono mensual"}, 1},
		{"duración cero usa default", &entity.Servicio{DuracionMinutos: ptrInt(0)}, 1},
		{"un día exacto", &entity.Servicio{DuracionMinutos: ptrInt(1440)}, 1},
		{"redondea hacia arriba", &entity.Servicio{DuracionMinutos: ptrInt(1441)}, 2},
		{"treinta días", &entity.Servicio{DuracionMinutos: ptrInt(43200)}, 30},
		{"menos de un día cuenta como uno", &entity.Servicio{DuracionMinutos: ptrInt(60)}, 1},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, abonos.DiasPorPeriodo(c.servicio, 1))
		})
	}
}

// ── TotalPeriodos / DuracionDias ──────────────────────────────────────────────

func TestTotalPeriodos(t *testing.T) {
	assert.Equal(t, 10, abonos.TotalPeriodos(10, 1))
	assert.Equal(t, 1, abonos.TotalPeriodos(0, 1), "sin duración debe generar un período")
	assert.Equal(t, 1, abonos.TotalPeriodos(1, 30))
	assert.Equal(t, 2, abonos.TotalPeriodos(31, 30))
	assert.Equal(t, 3, abonos.TotalPeriodos(2.5, 1), "días fraccionarios redondean hacia arriba")
}

func TestDuracionDias_SinFechaFinEsUnDia(t *testing.T) {
	assert.Equal(t, 1.0, abonos.DuracionDias(fecha(2024, 1, 1), nil))
	assert.Equal(t, 10.0, abonos.DuracionDias(fecha(2024, 1, 1), ptrTime(fecha(2024, 1, 11))))
}

func TestDuracionDias_CambioDeHorarioNoAlteraLosDias(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-11-03: fin del horario de verano (el día dura 25 horas).
	inicio := time.Date(2024, 10, 27, 0, 0, 0, 0, ny)
	fin := time.Date(2024, 11, 6, 0, 0, 0, 0, ny)
	assert.Equal(t, 10.0, abonos.DuracionDias(inicio, &fin))

	// 2024-03-10: inicio del horario de verano (el día dura 23 horas).
	inicio = time.Date(2024, 3, 5, 12, 0, 0, 0, ny)
	fin = time.Date(2024, 3, 15, 12, 0, 0, 0, ny)
	assert.Equal(t, 10.0, abonos.DuracionDias(inicio, &fin))

	// fin leído en otra zona (p.ej. UTC desde la base) se cuenta en la zona de inicio.
	finUTC := time.Date(2024, 11, 6, 0, 0, 0, 0, ny).UTC()
	assert.Equal(t, 10.0, abonos.DuracionDias(time.Date(2024, 10, 27, 0, 0, 0, 0, ny), &finUTC))
}

func TestDuracionDias_HorasFraccionarias(t *testing.T) {
	inicio := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	fin := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 2.5, abonos.DuracionDias(inicio, &fin))
}

func TestGenerarPeriodos_CruzaCambioDeHorario(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	inicio := time.Date(2024, 10, 27, 0, 0, 0, 0, ny)
	fin := time.Date(2024, 11, 6, 0, 0, 0, 0, ny)
	a := &entity.Abono{PlayaID: "p1", PlazaNro: 1, FechaInicio: inicio, FechaFin: &fin, EstadoPago: entity.EstadoPagoActivo}

	periodos, err := abonos.GenerarPeriodos(a, 1, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, periodos, 10)

	ultimo := periodos[len(periodos)-1]
	assert.True(t, ultimo.FechaFin.Equal(fin), "el último período termina en la fecha de fin del abono")
	for i := 1; i < len(periodos); i++ {
		assert.True(t, periodos[i].FechaInicio.Equal(periodos[i-1].FechaFin), "período %d contiguo", i+1)
		assert.True(t, periodos[i].FechaInicio.Before(fin), "ningún período empieza en la fecha de fin")
	}
}

func TestMontoEstimado(t *testing.T) {
	got := abonos.MontoEstimado(decimal.NewFromInt(300000), 30)
	assert.True(t, got.Equal(decimal.NewFromInt(10000)), "300000/30 debe ser 10000, got %s", got)

	got = abonos.MontoEstimado(decimal.NewFromInt(100), 30)
	assert.Equal(t, "3.33", got.StringFixed(2))
}

// ── GenerarPeriodos ───────────────────────────────────────────────────────────

// Abono de 10 días sin duración de servicio: 10 períodos diarios contiguos.
func TestGenerarPeriodos_DiezDiasActivo(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoActivo, fecha(2024, 1, 1), ptrTime(fecha(2024, 1, 11)))
	monto := decimal.NewFromInt(5000)

	periodos, err := abonos.GenerarPeriodos(abono, 1, monto)
	require.NoError(t, err)
	require.Len(t, periodos, 10)

	for i, p := range periodos {
		assert.Equal(t, i+1, p.NumeroPeriodo, "numeración 1..N sin huecos")
		assert.Equal(t, fecha(2024, 1, 1+i), p.FechaInicio)
		assert.Equal(t, fecha(2024, 1, 2+i), p.FechaFin)
		assert.True(t, p.Monto.Equal(monto))
		assert.Equal(t, abono.Key(), p.AbonoKey())
		if i == 0 {
			assert.True(t, p.Pagado, "el primer período de un abono activo sale pagado")
			require.NotNil(t, p.FechaPago)
			assert.Equal(t, abono.FechaInicio, *p.FechaPago)
		} else {
			assert.False(t, p.Pagado)
			assert.Nil(t, p.FechaPago)
		}
	}
}

func TestGenerarPeriodos_Contiguos(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoPendiente, fecha(2024, 2, 1), ptrTime(fecha(2024, 5, 15)))

	periodos, err := abonos.GenerarPeriodos(abono, 30, decimal.NewFromInt(1))
	require.NoError(t, err)
	require.Len(t, periodos, 4)

	assert.Equal(t, abono.FechaInicio, periodos[0].FechaInicio)
	for i := 0; i < len(periodos)-1; i++ {
		assert.Equal(t, periodos[i].FechaFin, periodos[i+1].FechaInicio, "período %d no es contiguo", i+1)
	}
}

func TestGenerarPeriodos_NoActivoNingunoPagado(t *testing.T) {
	for _, estado := range []string{entity.EstadoPagoPendiente, entity.EstadoPagoVencido, entity.EstadoPagoCancelado} {
		abono := nuevoAbono(estado, fecha(2024, 1, 1), ptrTime(fecha(2024, 1, 4)))
		periodos, err := abonos.GenerarPeriodos(abono, 1, decimal.Zero)
		require.NoError(t, err)
		require.Len(t, periodos, 3)
		for _, p := range periodos {
			assert.False(t, p.Pagado, "estado %s no debe marcar pagos", estado)
			assert.Nil(t, p.FechaPago)
		}
	}
}

func TestGenerarPeriodos_SinFechaFinUnPeriodo(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoActivo, fecha(2024, 3, 10), nil)
	periodos, err := abonos.GenerarPeriodos(abono, 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Len(t, periodos, 1)
	assert.Equal(t, fecha(2024, 3, 11), periodos[0].FechaFin)
}

func TestGenerarPeriodos_MismaFechaUnPeriodo(t *testing.T) {
	inicio := fecha(2024, 3, 10)
	abono := nuevoAbono(entity.EstadoPagoActivo, inicio, ptrTime(inicio))
	periodos, err := abonos.GenerarPeriodos(abono, 7, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Len(t, periodos, 1)
}

// ── Errores ───────────────────────────────────────────────────────────────────

func TestGenerarPeriodos_FechaFinAnteriorError(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoActivo, fecha(2024, 1, 10), ptrTime(fecha(2024, 1, 1)))
	_, err := abonos.GenerarPeriodos(abono, 1, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestGenerarPeriodos_MontoNegativoError(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoActivo, fecha(2024, 1, 1), nil)
	_, err := abonos.GenerarPeriodos(abono, 1, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGenerarPeriodos_DiasInvalidosError(t *testing.T) {
	abono := nuevoAbono(entity.EstadoPagoActivo, fecha(2024, 1, 1), nil)
	_, err := abonos.GenerarPeriodos(abono, 0, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = abonos.GenerarPeriodos(nil, 1, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
