package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"faturas/internal/api"
	"faturas/internal/core"
)

// fakeBackend implements InvoiceBackend with overridable behaviors.
type fakeBackend struct {
	uploadFn    func(ctx context.Context, files []api.UploadFile, onProgress api.ProgressFunc) error
	listFn      func(ctx context.Context, clientNumber, referenceMonth string) ([]core.Invoice, error)
	downloadFn  func(ctx context.Context, clientNumber, referenceMonth string) (io.ReadCloser, string, error)
	dashboardFn func(ctx context.Context, clientNumber, referenceMonth string) (core.DashboardSummary, error)
	customersFn func(ctx context.Context) ([]core.Customer, error)
}

func (f *fakeBackend) Upload(ctx context.Context, files []api.UploadFile, onProgress api.ProgressFunc) error {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, files, onProgress)
	}
	return nil
}

func (f *fakeBackend) ListInvoices(ctx context.Context, clientNumber, referenceMonth string) ([]core.Invoice, error) {
	if f.listFn != nil {
		return f.listFn(ctx, clientNumber, referenceMonth)
	}
	return nil, nil
}

func (f *fakeBackend) Download(ctx context.Context, clientNumber, referenceMonth string) (io.ReadCloser, string, error) {
	if f.downloadFn != nil {
		return f.downloadFn(ctx, clientNumber, referenceMonth)
	}
	return io.NopCloser(strings.NewReader("%PDF-1.4")), "application/pdf", nil
}

func (f *fakeBackend) DashboardData(ctx context.Context, clientNumber, referenceMonth string) (core.DashboardSummary, error) {
	if f.dashboardFn != nil {
		return f.dashboardFn(ctx, clientNumber, referenceMonth)
	}
	return core.DashboardSummary{}, nil
}

func (f *fakeBackend) Customers(ctx context.Context) ([]core.Customer, error) {
	if f.customersFn != nil {
		return f.customersFn(ctx)
	}
	return nil, nil
}

func newTestServer(t *testing.T, backend InvoiceBackend) *Server {
	t.Helper()
	srv := NewServer(":0", backend, Options{})
	t.Cleanup(func() {
		_ = srv.Shutdown(context.Background())
	})
	return srv
}

func doRequest(srv *Server, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func multipartBody(t *testing.T, fileNames ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, name := range fileNames {
		part, err := writer.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("conteudo de " + name)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestHomeRedirectsToDashboard(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{})

	rr := doRequest(srv, http.MethodGet, "/", nil, nil)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("location = %q", loc)
	}

	if rr := doRequest(srv, http.MethodGet, "/nonexistent", nil, nil); rr.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rr.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{})
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rr := doRequest(srv, http.MethodGet, path, nil, nil)
		if rr.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rr.Code)
		}
	}
}

func TestUploadPage(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{})
	rr := doRequest(srv, http.MethodGet, "/upload", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Selecione até 10 arquivos") {
		t.Error("upload page missing file input label")
	}
}

func TestUploadSubmit_Success(t *testing.T) {
	var gotFiles int
	backend := &fakeBackend{
		uploadFn: func(ctx context.Context, files []api.UploadFile, onProgress api.ProgressFunc) error {
			gotFiles = len(files)
			return nil
		},
	}
	srv := newTestServer(t, backend)

	body, contentType := multipartBody(t, "jan.pdf", "fev.pdf", "mar.pdf")
	rr := doRequest(srv, http.MethodPost, "/upload", body, map[string]string{"Content-Type": contentType})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if gotFiles != 3 {
		t.Errorf("backend received %d files, want 3", gotFiles)
	}
	if !strings.Contains(rr.Body.String(), "Upload concluído com sucesso!") {
		t.Errorf("missing success message: %s", rr.Body.String())
	}
}

func TestUploadSubmit_ValidationBlocksBackendCall(t *testing.T) {
	var backendCalls int
	backend := &fakeBackend{
		uploadFn: func(ctx context.Context, files []api.UploadFile, onProgress api.ProgressFunc) error {
			backendCalls++
			return nil
		},
	}
	srv := newTestServer(t, backend)

	// No files selected
	body, contentType := multipartBody(t)
	rr := doRequest(srv, http.MethodPost, "/upload", body, map[string]string{"Content-Type": contentType})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty batch status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Por favor, selecione pelo menos um arquivo para fazer o upload.") {
		t.Errorf("missing empty-batch message: %s", rr.Body.String())
	}

	// Eleven files
	names := make([]string, 11)
	for i := range names {
		names[i] = "fatura.pdf"
	}
	body, contentType = multipartBody(t, names...)
	rr = doRequest(srv, http.MethodPost, "/upload", body, map[string]string{"Content-Type": contentType})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("oversized batch status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Você só pode fazer o upload de até 10 arquivos por vez.") {
		t.Errorf("missing oversized-batch message: %s", rr.Body.String())
	}

	if backendCalls != 0 {
		t.Errorf("validation failures must not reach the backend, saw %d calls", backendCalls)
	}
}

func TestUploadSubmit_BackendFailure(t *testing.T) {
	backend := &fakeBackend{
		uploadFn: func(ctx context.Context, files []api.UploadFile, onProgress api.ProgressFunc) error {
			return errors.New("backend down")
		},
	}
	srv := newTestServer(t, backend)

	body, contentType := multipartBody(t, "jan.pdf")
	rr := doRequest(srv, http.MethodPost, "/upload", body, map[string]string{"Content-Type": contentType})
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Erro ao fazer o upload. Por favor, tente novamente.") {
		t.Errorf("missing generic error message: %s", rr.Body.String())
	}
}

func TestUpload_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakeBackend{})
	rr := doRequest(srv, http.MethodDelete, "/upload", nil, nil)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rr.Code)
	}
}
