package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Estacionamientos-api/internal/application/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/application/dto"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// AbonoHandler endpoints administrativos de abonos.
type AbonoHandler struct {
	backfill    *abonos.BackfillPeriodosUseCase
	periodoRepo repository.PeriodoAbonoRepository
}

// NewAbonoHandler construye el handler a partir del caso de uso de backfill.
func NewAbonoHandler(uc *abonos.BackfillPeriodosUseCase, periodoRepo repository.PeriodoAbonoRepository) *AbonoHandler {
	return &AbonoHandler{backfill: uc, periodoRepo: periodoRepo}
}

// BackfillPeriodos godoc
// @Summary      Completar períodos faltantes de abonos
// @Tags         abonos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackfillPeriodosRequest  false  "dry_run, commit_mode"
// @Success      200   {object}  dto.BackfillResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.CommitFailedResponse
// @Router       /api/admin/abonos/periodos/backfill [post]
func (h *AbonoHandler) BackfillPeriodos(c *fiber.Ctx) error {
	var in dto.BackfillPeriodosRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := requestValidator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "commit_mode debe ser single o per_abono"})
	}
	res, err := h.backfill.WithOptions(in.DryRun, in.CommitMode).Run(c.UserContext())
	if err != nil {
		var commitErr *abonos.CommitError
		if errors.As(err, &commitErr) {
			keys := make([]string, 0, len(commitErr.Keys))
			for _, k := range commitErr.Keys {
				keys = append(keys, k.String())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.CommitFailedResponse{
				Code:    "COMMIT_FAILED",
				Message: err.Error(),
				Abonos:  keys,
				Result:  res,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// ListPeriodos godoc
// @Summary      Períodos de un abono
// @Tags         abonos
// @Produce      json
// @Param        playa_id      query  string  true  "playa"
// @Param        plaza_nro     query  int     true  "plaza"
// @Param        fecha_inicio  query  string  true  "inicio del abono (RFC3339)"
// @Success      200  {array}   dto.PeriodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/abonos/periodos [get]
func (h *AbonoHandler) ListPeriodos(c *fiber.Ctx) error {
	plaza, err := strconv.Atoi(c.Query("plaza_nro"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plaza_nro inválido"})
	}
	inicio, err := time.Parse(time.RFC3339, c.Query("fecha_inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_inicio debe ser RFC3339"})
	}
	key := entity.AbonoKey{PlayaID: c.Query("playa_id"), PlazaNro: plaza, FechaInicio: inicio}
	if key.PlayaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "playa_id requerido"})
	}
	periodos, err := h.periodoRepo.ListByAbono(c.UserContext(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.PeriodoResponse, 0, len(periodos))
	for _, p := range periodos {
		out = append(out, dto.PeriodoResponse{
			NumeroPeriodo: p.NumeroPeriodo,
			FechaInicio:   p.FechaInicio,
			FechaFin:      p.FechaFin,
			Monto:         p.Monto,
			Pagado:        p.Pagado,
			FechaPago:     p.FechaPago,
		})
	}
	return c.JSON(out)
}
