package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BackfillPeriodosRequest opciones de una corrida del backfill disparada por HTTP.
type BackfillPeriodosRequest struct {
	DryRun     bool   `json:"dry_run"`
	CommitMode string `json:"commit_mode" validate:"omitempty,oneof=single per_abono"`
}

// BackfillResult resumen de una corrida del backfill de períodos.
type BackfillResult struct {
	AbonosEncontrados int            `json:"abonos_encontrados"`
	AbonosProcesados  int            `json:"abonos_procesados"`
	PeriodosCreados   int            `json:"periodos_creados"`
	DiasPorPeriodo    int            `json:"dias_por_periodo"`
	DryRun            bool           `json:"dry_run"`
	Fallidos          []AbonoFallido `json:"fallidos,omitempty"`
}

// AbonoFallido identifica un abono que no pudo procesarse y el motivo.
type AbonoFallido struct {
	PlayaID     string    `json:"playa_id"`
	PlazaNro    int       `json:"plaza_nro"`
	FechaInicio time.Time `json:"fecha_inicio"`
	Error       string    `json:"error"`
}

// PeriodoResponse un período de abono.
type PeriodoResponse struct {
	NumeroPeriodo int             `json:"numero_periodo"`
	FechaInicio   time.Time       `json:"fecha_inicio"`
	FechaFin      time.Time       `json:"fecha_fin"`
	Monto         decimal.Decimal `json:"monto"`
	Pagado        bool            `json:"pagado"`
	FechaPago     *time.Time      `json:"fecha_pago,omitempty"`
}

// CommitFailedResponse error del commit único del backfill. Abonos lista las claves
// (playa/plaza/fecha_inicio) que quedaron sin períodos, para reintentar solo esas.
type CommitFailedResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Abonos  []string        `json:"abonos"`
	Result  *BackfillResult `json:"result,omitempty"`
}
