package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tu-usuario/relojes/internal/application/report"
	"github.com/tu-usuario/relojes/internal/application/usecase"
	"github.com/tu-usuario/relojes/internal/infrastructure/jsonfile"
	"github.com/tu-usuario/relojes/internal/infrastructure/pdf"
	"github.com/tu-usuario/relojes/internal/interfaces/tui"
	"github.com/tu-usuario/relojes/pkg/config"
	"github.com/tu-usuario/relojes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// La TUI ocupa stdout: el log va siempre a archivo.
	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "abrir archivo de log:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   logFile,
	})
	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("session", uuid.New().String()).
		Str("data_file", cfg.Storage.DataFile).
		Msg("iniciando aplicación")

	store := jsonfile.NewStore(cfg.Storage.DataFile)

	// Un archivo presente pero ilegible es fatal: no se puede operar con
	// estado desconocido. La ausencia del archivo es el bootstrap normal.
	inv, err := store.Load()
	if err != nil {
		log.Error().Err(err).Msg("no se pudo cargar el inventario")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	invUC := usecase.NewInventoryUseCase(inv, store, log)
	reportUC := report.NewUseCase(inv, pdf.NewMarotoReportGenerator(), cfg.Report.OutputDir, log)

	p := tea.NewProgram(
		tui.NewModel(invUC, reportUC, log, cfg.Chart.WindowDays),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("la interfaz terminó con error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Guardado final al salir; si falla solo se registra (los guardados por
	// operación ya dejaron el archivo al día en el caso normal).
	if err := store.Save(inv); err != nil {
		log.Warn().Err(err).Msg("guardado final fallido")
	}
	log.Info().Msg("sesión terminada")
}
