/*
handlers.go - HTTP handlers for the punch-card converter

PURPOSE:
  Exposes the timesheet engine over REST. Handlers parse the multipart
  upload, call the engine, and serialize either a spreadsheet or a JSON
  preview. No business logic lives here.

ENDPOINTS:
  POST /api/convert    punch files -> .xlsx report (attachment)
  POST /api/preview    punch files -> JSON day records and summaries
  GET  /api/schedules  schedule catalog listing
  GET  /api/health     liveness probe

UPLOAD FORM:
  files      one or more clock-export text files (required)
  settings   optional JSON (SettingsPart)
  overrides  optional JSON array (OverridePart)

ERROR HANDLING:
  400 when nothing computable was uploaded (structural failure), 500 for
  everything unexpected. Soft failures never error - they ride along in the
  report's warning list.
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/export"
	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/ingest"
	"github.com/wolfxguiw/ProjetoCartaoDePontoV1/timesheet"
)

// maxUploadBytes caps the multipart parse buffer.
const maxUploadBytes = 32 << 20

// Handler holds the handler dependencies.
type Handler struct {
	Engine *timesheet.Engine
	Log    *zap.Logger
}

// NewHandler wires the engine. A nil logger disables logging.
func NewHandler(engine *timesheet.Engine, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Engine: engine, Log: log}
}

// Convert runs the computation and streams the spreadsheet back.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	report, ok := h.compute(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, report); err != nil {
		h.Log.Error("geração do relatório falhou", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "falha ao gerar o relatório")
		return
	}

	filename := fmt.Sprintf("relatorio_consolidado_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Preview runs the computation and returns the JSON preview.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	report, ok := h.compute(w, r)
	if !ok {
		return
	}

	resp := PreviewResponse{Warnings: report.Warnings}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	for _, s := range report.Summaries {
		resp.Summaries = append(resp.Summaries, toSummaryDTO(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListSchedules exposes the catalog so the frontend can offer the options.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	var out []ScheduleDTO
	for _, def := range h.Engine.Catalog().List() {
		out = append(out, ScheduleDTO{
			ID:        def.ID,
			Name:      def.Name,
			Kind:      string(def.Kind),
			Statutory: def.Statutory,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// REQUEST PARSING
// =============================================================================

// compute parses the upload, runs the engine, and handles the error paths.
// Returns (report, true) on success; on failure the response is written.
func (h *Handler) compute(w http.ResponseWriter, r *http.Request) (*timesheet.Report, bool) {
	input, uploadWarnings, err := parseComputeRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	report, err := h.Engine.Run(input)
	if errors.Is(err, timesheet.ErrNoData) {
		writeError(w, http.StatusBadRequest, "nenhum dado válido foi encontrado nos arquivos enviados")
		return nil, false
	}
	if err != nil {
		h.Log.Error("processamento falhou", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "ocorreu um erro inesperado no servidor")
		return nil, false
	}

	report.Warnings = append(uploadWarnings, report.Warnings...)
	return report, true
}

// parseComputeRequest extracts punch events, settings and overrides from
// the multipart form.
func parseComputeRequest(r *http.Request) (timesheet.Input, []string, error) {
	var input timesheet.Input

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return input, nil, fmt.Errorf("envio inválido: esperado multipart/form-data")
	}

	files := formFiles(r.MultipartForm)
	if len(files) == 0 {
		return input, nil, fmt.Errorf("nenhum arquivo enviado")
	}

	var (
		readers  []io.Reader
		closers  []io.Closer
		warnings []string
	)
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("arquivo %s ignorado: %v", fh.Filename, err))
			continue
		}
		closers = append(closers, f)
		readers = append(readers, f)
	}

	events, parseWarnings := ingest.Consolidate(readers...)
	warnings = append(warnings, parseWarnings...)
	input.Punches = events

	settings, settingsWarnings, err := parseSettingsPart(r.FormValue("settings"))
	if err != nil {
		return input, nil, err
	}
	warnings = append(warnings, settingsWarnings...)
	input.Settings = settings

	overrides, overrideWarnings, err := parseOverridesPart(r.FormValue("overrides"))
	if err != nil {
		return input, nil, err
	}
	warnings = append(warnings, overrideWarnings...)
	input.Overrides = overrides

	return input, warnings, nil
}

// formFiles collects uploads from the "files" field, falling back to every
// file part for clients that name fields differently.
func formFiles(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	if named := form.File["files"]; len(named) > 0 {
		return named
	}
	var all []*multipart.FileHeader
	for _, headers := range form.File {
		all = append(all, headers...)
	}
	return all
}

func parseSettingsPart(raw string) (timesheet.Settings, []string, error) {
	if raw == "" {
		return timesheet.DefaultSettings(), nil, nil
	}
	var part SettingsPart
	if err := json.Unmarshal([]byte(raw), &part); err != nil {
		return timesheet.Settings{}, nil, fmt.Errorf("parte settings inválida: %v", err)
	}
	s, warnings := part.ToSettings()
	return s, warnings, nil
}

func parseOverridesPart(raw string) (map[timesheet.OverrideKey]timesheet.Status, []string, error) {
	if raw == "" {
		return nil, nil, nil
	}
	var parts []OverridePart
	if err := json.Unmarshal([]byte(raw), &parts); err != nil {
		return nil, nil, fmt.Errorf("parte overrides inválida: %v", err)
	}
	overrides := make(map[timesheet.OverrideKey]timesheet.Status, len(parts))
	var warnings []string
	for _, p := range parts {
		date, err := timesheet.ParseDate(p.Date)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ajuste manual ignorado: data inválida %q", p.Date))
			continue
		}
		key := timesheet.OverrideKey{
			Employee: timesheet.EmployeeID(p.Employee),
			Date:     date,
		}
		overrides[key] = timesheet.Status(p.Status)
	}
	return overrides, warnings, nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
