package http

import (
	"errors"
	"log/slog"
	"net/http"

	"faturas/internal/api"
	"faturas/internal/core"
	"faturas/internal/observability/metrics"
)

// Messages shown by the upload view. The backend never sees an invalid
// batch; both validation failures stop before any call goes out.
const (
	msgNoFiles       = "Por favor, selecione pelo menos um arquivo para fazer o upload."
	msgTooManyFiles  = "Você só pode fazer o upload de até 10 arquivos por vez."
	msgUploadOK      = "Upload concluído com sucesso!"
	msgUploadFailed  = "Erro ao fazer o upload. Por favor, tente novamente."
	msgInvalidUpload = "Formato de requisição inválido."
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleUploadPage(w, r)
	case http.MethodPost:
		s.handleUploadSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Active   string
		MaxFiles int
	}{
		Active:   "upload",
		MaxFiles: s.maxUploadFiles,
	}
	s.render(w, r, "upload.html", data)
}

// handleUploadSubmit forwards the selected files to the backend and
// answers with the alert fragment the page swaps in. The selected-file
// list is outside the swap target, so it stays visible after success.
func (s *Server) handleUploadSubmit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		slog.ErrorContext(r.Context(), "Parse multipart form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		writeAlert(w, "danger", msgInvalidUpload)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	headers := r.MultipartForm.File["files"]
	if err := core.ValidateUploadCount(len(headers)); err != nil {
		slog.WarnContext(r.Context(), "Upload batch rejected", "error", err, "file_count", len(headers))
		w.WriteHeader(http.StatusUnprocessableEntity)
		switch {
		case errors.Is(err, core.ErrNoFiles):
			writeAlert(w, "danger", msgNoFiles)
		case errors.Is(err, core.ErrTooManyFiles):
			writeAlert(w, "danger", msgTooManyFiles)
		default:
			writeAlert(w, "danger", msgUploadFailed)
		}
		return
	}

	files := make([]api.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			slog.ErrorContext(r.Context(), "Open uploaded file error", "error", err, "filename", h.Filename)
			w.WriteHeader(http.StatusBadRequest)
			writeAlert(w, "danger", msgInvalidUpload)
			return
		}
		defer f.Close()
		files = append(files, api.UploadFile{Name: h.Filename, Content: f})
	}

	ctx := r.Context()
	err := s.backend.Upload(ctx, files, func(pct int) {
		slog.DebugContext(ctx, "Upload progress", "progress_pct", pct)
	})
	if err != nil {
		slog.ErrorContext(ctx, "Upload failed", "error", err, "file_count", len(files))
		w.WriteHeader(http.StatusBadGateway)
		writeAlert(w, "danger", msgUploadFailed)
		return
	}

	metrics.ObserveUploadBatch(len(files))
	slog.InfoContext(ctx, "Upload completed", "file_count", len(files))
	writeAlert(w, "success", msgUploadOK)
}

// writeAlert emits the small alert fragment both the HTMX flow and the
// XHR progress flow swap into the page.
func writeAlert(w http.ResponseWriter, kind, message string) {
	_, _ = w.Write([]byte(`<div class="alert alert-` + kind + `">` + message + `</div>`))
}
