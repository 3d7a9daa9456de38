package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"faturas/internal/core"
	applog "faturas/internal/log"
	"faturas/internal/observability/metrics"
)

// UploadFile is one local file handed to Upload.
type UploadFile struct {
	Name    string
	Content io.Reader
}

// ProgressFunc receives the rounded upload percentage (0-100) as request
// bytes go out. Calls are monotonic; the last call is always 100.
type ProgressFunc func(pct int)

// Upload sends the files to the backend as one multipart request under
// the "files" field. The batch size rule (1..MaxUploadFiles) is enforced
// before any bytes are sent. onProgress may be nil.
func (c *Client) Upload(ctx context.Context, files []UploadFile, onProgress ProgressFunc) error {
	start := time.Now()
	err := c.doUpload(ctx, files, onProgress)
	metrics.ObserveBackendRequest(applog.OpUpload, err, time.Since(start))
	return err
}

func (c *Client) doUpload(ctx context.Context, files []UploadFile, onProgress ProgressFunc) error {
	if err := core.ValidateUploadCount(len(files)); err != nil {
		return err
	}

	// The whole payload is buffered so the total size is known up front;
	// progress is loaded/total over the finished multipart body.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return fmt.Errorf("api: %s: create form file %q: %w", applog.OpUpload, f.Name, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("api: %s: read file %q: %w", applog.OpUpload, f.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("api: %s: finish multipart body: %w", applog.OpUpload, err)
	}

	total := int64(body.Len())
	reader := io.Reader(&body)
	if onProgress != nil {
		reader = &progressReader{r: &body, total: total, onProgress: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoices/upload", reader)
	if err != nil {
		return fmt.Errorf("api: %s: build request: %w", applog.OpUpload, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = total

	c.logger.InfoContext(ctx, "Uploading invoices",
		applog.FieldFileCount, len(files),
		applog.FieldBytesTotal, total)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s: %w", applog.OpUpload, err)
	}
	defer resp.Body.Close()
	drain(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Operation: applog.OpUpload, StatusCode: resp.StatusCode}
	}
	return nil
}

// progressReader reports rounded percentages as the request body drains.
type progressReader struct {
	r          io.Reader
	total      int64
	loaded     int64
	lastPct    int
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		pct := roundPct(p.loaded, p.total)
		if pct != p.lastPct {
			p.lastPct = pct
			p.onProgress(pct)
		}
	}
	return n, err
}

// roundPct computes round(loaded*100/total), guarding a zero total.
func roundPct(loaded, total int64) int {
	if total <= 0 {
		return 100
	}
	return int((loaded*100 + total/2) / total)
}
