package abonos

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estacionamientos-api/internal/application/dto"
	domabonos "github.com/jhoicas/Estacionamientos-api/internal/domain/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamientos-api/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Modos de commit del backfill.
const (
	CommitSingle   = "single"    // una sola transacción al final para todos los abonos
	CommitPerAbono = "per_abono" // una transacción por abono, con fallos aislados
)

// BackfillConfig parámetros de la corrida.
type BackfillConfig struct {
	ServiceMatch    string // fragmento buscado en Servicio.Nombre ("Abono")
	DefaultDias     int    // días por período si no hay servicio con duración
	FallbackDivisor int    // Abono.Monto / FallbackDivisor cuando la playa no tiene tarifa
	CommitMode      string // single | per_abono
	DryRun          bool   // calcula y registra sin escribir
}

// DefaultBackfillConfig valores usados cuando la configuración no define otros.
func DefaultBackfillConfig() BackfillConfig {
	return BackfillConfig{
		ServiceMatch:    "Abono",
		DefaultDias:     1,
		FallbackDivisor: 30,
		CommitMode:      CommitSingle,
	}
}

// BackfillPeriodosUseCase genera los PeriodoAbono faltantes de abonos preexistentes.
// Solo toca abonos con cero períodos: re-ejecutarlo sobre abonos ya poblados no hace nada.
type BackfillPeriodosUseCase struct {
	abonoRepo    repository.AbonoRepository
	servicioRepo repository.ServicioRepository
	tarifaRepo   repository.TarifaRepository
	txRunner     PeriodosTxRunner
	cfg          BackfillConfig
	log          *logger.Logger
}

// NewBackfillPeriodosUseCase construye el caso de uso. log puede ser nil.
func NewBackfillPeriodosUseCase(
	abonoRepo repository.AbonoRepository,
	servicioRepo repository.ServicioRepository,
	tarifaRepo repository.TarifaRepository,
	txRunner PeriodosTxRunner,
	cfg BackfillConfig,
	log *logger.Logger,
) *BackfillPeriodosUseCase {
	def := DefaultBackfillConfig()
	if cfg.ServiceMatch == "" {
		cfg.ServiceMatch = def.ServiceMatch
	}
	if cfg.DefaultDias <= 0 {
		cfg.DefaultDias = def.DefaultDias
	}
	if cfg.FallbackDivisor <= 0 {
		cfg.FallbackDivisor = def.FallbackDivisor
	}
	if cfg.CommitMode == "" {
		cfg.CommitMode = def.CommitMode
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BackfillPeriodosUseCase{
		abonoRepo:    abonoRepo,
		servicioRepo: servicioRepo,
		tarifaRepo:   tarifaRepo,
		txRunner:     txRunner,
		cfg:          cfg,
		log:          log,
	}
}

// WithOptions devuelve una copia del caso de uso con dryRun y commitMode sobrescritos
// (commitMode vacío conserva el configurado).
func (uc *BackfillPeriodosUseCase) WithOptions(dryRun bool, commitMode string) *BackfillPeriodosUseCase {
	cp := *uc
	cp.cfg.DryRun = dryRun
	if commitMode != "" {
		cp.cfg.CommitMode = commitMode
	}
	return &cp
}

// abonoPlanificado son los períodos calculados (aún sin persistir) de un abono.
type abonoPlanificado struct {
	key      entity.AbonoKey
	periodos []*entity.PeriodoAbono
}

// Run ejecuta el backfill completo. Los errores de un abono se registran y no detienen la corrida;
// solo el listado inicial y el commit único son fatales.
func (uc *BackfillPeriodosUseCase) Run(ctx context.Context) (*dto.BackfillResult, error) {
	if uc.cfg.CommitMode != CommitSingle && uc.cfg.CommitMode != CommitPerAbono {
		return nil, fmt.Errorf("modo de commit desconocido %q", uc.cfg.CommitMode)
	}

	candidatos, err := uc.abonoRepo.ListSinPeriodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar abonos sin períodos: %w", err)
	}
	uc.log.Info().Int("abonos", len(candidatos)).Msg("abonos sin períodos encontrados")

	result := &dto.BackfillResult{AbonosEncontrados: len(candidatos), DryRun: uc.cfg.DryRun}
	if len(candidatos) == 0 {
		uc.log.Info().Msg("no hay abonos para completar")
		return result, nil
	}

	// La búsqueda por nombre no depende del abono: se resuelve una vez por corrida.
	// Si falla se sigue con la duración por defecto, igual que cuando no hay servicio.
	servicio, err := uc.servicioRepo.FindFirstByNombreContains(ctx, uc.cfg.ServiceMatch)
	if err != nil {
		servicio = nil
	}
	dias := domabonos.DiasPorPeriodo(servicio, uc.cfg.DefaultDias)
	result.DiasPorPeriodo = dias
	switch {
	case err != nil:
		uc.log.Error().Err(err).Str("match", uc.cfg.ServiceMatch).Int("dias_por_periodo", dias).
			Msg("error buscando el servicio de abono, se usa la duración por defecto")
	case servicio != nil:
		uc.log.Debug().Str("servicio_id", servicio.ID).Str("servicio", servicio.Nombre).Int("dias_por_periodo", dias).Msg("servicio de abono")
	default:
		uc.log.Warn().Str("match", uc.cfg.ServiceMatch).Int("dias_por_periodo", dias).Msg("sin servicio de abono, se usa la duración por defecto")
	}

	tarifas := make(map[string]*entity.TarifaServicio)
	planificados := make([]abonoPlanificado, 0, len(candidatos))
	for _, abono := range candidatos {
		periodos, err := uc.planificar(ctx, abono, dias, tarifas)
		if err != nil {
			uc.registrarFallo(result, abono.Key(), err, "error generando períodos del abono")
			continue
		}
		planificados = append(planificados, abonoPlanificado{key: abono.Key(), periodos: periodos})
		uc.logAbono(abono.Key()).Int("periodos", len(periodos)).Msg("períodos generados para el abono")
	}

	uc.logManifiesto(planificados)

	if uc.cfg.DryRun {
		for _, p := range planificados {
			result.AbonosProcesados++
			result.PeriodosCreados += len(p.periodos)
		}
		uc.log.Info().Int("abonos", result.AbonosProcesados).Int("periodos", result.PeriodosCreados).Msg("dry-run: no se guardó ningún período")
		return result, nil
	}

	if uc.cfg.CommitMode == CommitPerAbono {
		uc.commitPorAbono(ctx, planificados, result)
	} else if err := uc.commitUnico(ctx, planificados, result); err != nil {
		return result, err
	}

	uc.log.Info().
		Int("abonos", result.AbonosProcesados).
		Int("periodos", result.PeriodosCreados).
		Int("fallidos", len(result.Fallidos)).
		Msg("backfill de períodos completado")
	return result, nil
}

// planificar calcula los períodos de un abono. tarifas cachea la última tarifa por playa (incluye nil).
func (uc *BackfillPeriodosUseCase) planificar(ctx context.Context, abono *entity.Abono, dias int, tarifas map[string]*entity.TarifaServicio) ([]*entity.PeriodoAbono, error) {
	tarifa, ok := tarifas[abono.PlayaID]
	if !ok {
		t, err := uc.tarifaRepo.FindLatestByPlaya(ctx, abono.PlayaID)
		if err != nil {
			return nil, fmt.Errorf("buscar tarifa de la playa: %w", err)
		}
		tarifas[abono.PlayaID] = t
		tarifa = t
	}

	var monto decimal.Decimal
	if tarifa != nil {
		monto = tarifa.Monto
	} else {
		monto = domabonos.MontoEstimado(abono.Monto, uc.cfg.FallbackDivisor)
	}
	return domabonos.GenerarPeriodos(abono, dias, monto)
}

func (uc *BackfillPeriodosUseCase) commitUnico(ctx context.Context, planificados []abonoPlanificado, result *dto.BackfillResult) error {
	if len(planificados) == 0 {
		return nil
	}
	var todos []*entity.PeriodoAbono
	for _, p := range planificados {
		todos = append(todos, p.periodos...)
	}
	err := uc.txRunner.RunPeriodos(ctx, func(periodoRepo repository.PeriodoAbonoRepository) error {
		return periodoRepo.CreateMany(ctx, todos)
	})
	if err != nil {
		keys := make([]entity.AbonoKey, 0, len(planificados))
		for _, p := range planificados {
			keys = append(keys, p.key)
		}
		uc.log.Error().Err(err).Int("abonos", len(keys)).Msg("falló el commit de períodos, ningún abono quedó actualizado")
		return &CommitError{Keys: keys, Err: err}
	}
	result.AbonosProcesados = len(planificados)
	result.PeriodosCreados = len(todos)
	return nil
}

func (uc *BackfillPeriodosUseCase) commitPorAbono(ctx context.Context, planificados []abonoPlanificado, result *dto.BackfillResult) {
	for _, p := range planificados {
		periodos := p.periodos
		err := uc.txRunner.RunPeriodos(ctx, func(periodoRepo repository.PeriodoAbonoRepository) error {
			return periodoRepo.CreateMany(ctx, periodos)
		})
		if err != nil {
			uc.registrarFallo(result, p.key, err, "error guardando períodos del abono")
			continue
		}
		result.AbonosProcesados++
		result.PeriodosCreados += len(periodos)
	}
}

// logManifiesto deja constancia, antes de escribir, de qué abonos se van a persistir.
func (uc *BackfillPeriodosUseCase) logManifiesto(planificados []abonoPlanificado) {
	total := 0
	keys := make([]string, 0, len(planificados))
	for _, p := range planificados {
		total += len(p.periodos)
		keys = append(keys, p.key.String())
	}
	uc.log.Info().
		Int("abonos", len(planificados)).
		Int("periodos", total).
		Str("commit_mode", uc.cfg.CommitMode).
		Strs("keys", keys).
		Msg("manifiesto previo al commit")
}

func (uc *BackfillPeriodosUseCase) registrarFallo(result *dto.BackfillResult, key entity.AbonoKey, err error, msg string) {
	uc.log.Error().
		Str("playa_id", key.PlayaID).
		Int("plaza_nro", key.PlazaNro).
		Time("fecha_inicio", key.FechaInicio).
		Err(err).
		Msg(msg)
	result.Fallidos = append(result.Fallidos, dto.AbonoFallido{
		PlayaID:     key.PlayaID,
		PlazaNro:    key.PlazaNro,
		FechaInicio: key.FechaInicio,
		Error:       err.Error(),
	})
}

func (uc *BackfillPeriodosUseCase) logAbono(key entity.AbonoKey) *zerolog.Event {
	return uc.log.Info().
		Str("playa_id", key.PlayaID).
		Int("plaza_nro", key.PlazaNro).
		Time("fecha_inicio", key.FechaInicio)
}
