package worker

// reporte_worker.go
// Processes report jobs from QueueReporte: loads the day's sales record,
// renders the PDF report and mails it. Failures are logged and the job is
// dropped; the caller re-enqueues by asking again.

import (
	"context"
	"encoding/json"

	"ventadiaria/internal/infra"
	"ventadiaria/internal/repository"

	"github.com/rs/zerolog/log"
)

type ReporteWorker struct {
	ventas         repository.RegistroVentaRepository
	mailer         *infra.Mailer
	pdfStoragePath string
	nombreNegocio  string
}

func NewReporteWorker(ventas repository.RegistroVentaRepository, mailer *infra.Mailer, pdfStoragePath, nombreNegocio string) *ReporteWorker {
	return &ReporteWorker{
		ventas:         ventas,
		mailer:         mailer,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

// Process generates the day's PDF and sends it to the requested address.
func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReportePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return
	}
	if payload.Email == "" || payload.Fecha == "" {
		log.Warn().Msg("reporte_worker: empty fecha or email, skipping")
		return
	}

	reg, _, err := w.ventas.Load(ctx, payload.Fecha)
	if err != nil {
		log.Error().Err(err).Str("fecha", payload.Fecha).Msg("reporte_worker: failed to load record")
		return
	}

	pdfPath, err := infra.GenerarReportePDF(reg, w.pdfStoragePath, w.nombreNegocio)
	if err != nil {
		log.Error().Err(err).Str("fecha", payload.Fecha).Msg("reporte_worker: failed to generate PDF")
		return
	}

	if err := w.mailer.SendReporte(payload.Email, payload.Fecha, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.Email).Msg("reporte_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.Email).Str("fecha", payload.Fecha).Msg("reporte_worker: reporte sent successfully")
}
