// Command backfill_periodos genera los períodos faltantes de los abonos existentes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Estacionamientos-api/internal/application/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estacionamientos-api/pkg/config"
	"github.com/jhoicas/Estacionamientos-api/pkg/logger"
)

var (
	dryRun     bool
	commitMode string
	migrate    bool
)

var rootCmd = &cobra.Command{
	Use:   "backfill_periodos",
	Short: "Genera los PeriodoAbono de los abonos que no tienen ninguno",
	Long: `Recorre los abonos sin períodos, calcula sus períodos contiguos (duración del servicio de abono,
monto de la última tarifa de la playa) y los guarda. Abonos ya poblados no se tocan.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "calcular y registrar sin escribir en la base")
	rootCmd.Flags().StringVar(&commitMode, "commit-mode", "", "single | per_abono (por defecto BACKFILL_COMMIT_MODE)")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "aplicar migraciones antes de ejecutar")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	if migrate || cfg.App.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	uc := abonos.NewBackfillPeriodosUseCase(
		postgres.NewAbonoRepository(pool),
		postgres.NewServicioRepository(pool),
		postgres.NewTarifaRepository(pool),
		postgres.NewTxRunner(pool),
		abonos.BackfillConfig{
			ServiceMatch:    cfg.Backfill.ServiceMatch,
			DefaultDias:     cfg.Backfill.DefaultDays,
			FallbackDivisor: cfg.Backfill.FallbackDivisor,
			CommitMode:      cfg.Backfill.CommitMode,
		},
		log.Component("backfill_periodos"),
	)

	res, err := uc.WithOptions(dryRun, commitMode).Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("abonos encontrados: %d, procesados: %d, períodos creados: %d, fallidos: %d\n",
		res.AbonosEncontrados, res.AbonosProcesados, res.PeriodosCreados, len(res.Fallidos))
	return nil
}
