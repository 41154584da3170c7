// Command report ejecuta el análisis completo en batch: imprime las tablas por
// consola, escribe los gráficos en --out y opcionalmente el PDF.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/supplychain-analytics/internal/application/report"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/chart"
	infrapdf "github.com/jhoicas/supplychain-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/source"
	"github.com/jhoicas/supplychain-analytics/internal/interfaces/console"
	"github.com/jhoicas/supplychain-analytics/pkg/config"
	"github.com/jhoicas/supplychain-analytics/pkg/logger"
)

func main() {
	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	fs.String("data", "", "ruta al CSV del dataset (default data/SCA.csv)")
	fs.String("source", "", "origen del dataset: csv | postgres (default csv)")
	fs.String("encoding", "", "codificación del CSV: utf-8 | latin1 | windows-1252")
	fs.String("out", "", "directorio de salida de gráficos y PDF (default out)")
	fs.String("format", "", "formato de los gráficos: png | svg (default png)")
	fs.Bool("pdf", false, "escribir además report.pdf")
	fs.Bool("quiet", false, "no imprimir las tablas por consola")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("reporte fallido")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	start := time.Now()

	src, closeSource, err := source.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSource()

	renderer, err := chart.NewRenderer(cfg.Output.ChartFormat, cfg.Output.ChartWidth, cfg.Output.ChartHeight)
	if err != nil {
		return err
	}
	pngRenderer, err := chart.NewRenderer(chart.FormatPNG, cfg.Output.ChartWidth, cfg.Output.ChartHeight)
	if err != nil {
		return err
	}

	uc := report.NewReportUseCase(src, infrapdf.NewMarotoPDFGenerator(), pngRenderer, nil, report.Options{
		PreviewRows: cfg.Report.PreviewRows,
		TopDefects:  cfg.Report.TopDefects,
	})

	rep, err := uc.Build(ctx)
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		if err := console.NewPrinter(os.Stdout, cfg.Report.PreviewRows).PrintReport(rep); err != nil {
			return fmt.Errorf("imprimir reporte: %w", err)
		}
	}

	charts, err := report.RenderCharts(ctx, renderer, report.Charts(rep))
	if err != nil {
		return err
	}
	paths, err := chart.NewChartSet(cfg.Output.Dir, log).WriteAll(charts)
	if err != nil {
		return err
	}

	if cfg.Output.PDF {
		var data []byte
		if renderer.Extension() == chart.FormatPNG {
			data, err = uc.PDFFromCharts(ctx, rep, charts)
		} else {
			data, err = uc.BuildPDF(ctx, rep)
		}
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.Output.Dir, "report.pdf")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		log.Info().Str("path", path).Int("bytes", len(data)).Msg("PDF escrito")
	}

	log.Info().
		Str("run_id", rep.RunID).
		Int("charts", len(paths)).
		Str("out", cfg.Output.Dir).
		Dur("duration", time.Since(start)).
		Msg("reporte construido")
	return nil
}
