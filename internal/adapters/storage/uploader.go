// Package storage uploads KYC documents straight to object storage via
// the presigned URLs handed out by the onboarding intent endpoint.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainonb "github.com/imaginarybank/webcore/internal/domain/onboarding"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
)

// UploaderOptions configures an Uploader.
type UploaderOptions struct {
	// HTTPClient is required. It should be a plain client: presigned
	// URLs point at a storage origin, so cookies and CSRF tokens never
	// apply to these requests.
	HTTPClient *http.Client
	// Timeout bounds a single PUT. Zero means no per-upload deadline
	// beyond the caller's context.
	Timeout time.Duration
	Logger  *slog.Logger
}

// Uploader PUTs document bytes to presigned targets.
type Uploader struct {
	http    *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewUploader constructs an Uploader.
func NewUploader(opts UploaderOptions) (*Uploader, error) {
	if opts.HTTPClient == nil {
		return nil, fmt.Errorf("uploader: HTTP client is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{http: opts.HTTPClient, timeout: opts.Timeout, logger: logger}, nil
}

// Upload PUTs the file to the target. The file must already have passed
// target.CheckFile; this method revalidates anyway so a misuse cannot
// burn a presigned slot on a doomed request.
func (u *Uploader) Upload(ctx context.Context, target domainonb.PresignedTarget, file domainonb.File) (string, error) {
	if !target.Complete() {
		return "", apperrors.Internalf("upload slot for %s is missing its URL or object key", target.DocType)
	}
	// Validate the size that actually goes on the wire, not the
	// caller's declared one.
	file.Size = int64(len(file.Content))
	if err := target.CheckFile(file); err != nil {
		return "", err
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target.UploadURL, bytes.NewReader(file.Content))
	if err != nil {
		return "", apperrors.Internalf("upload request for %s: %v", target.DocType, err)
	}
	req.ContentLength = int64(len(file.Content))
	if file.ContentType != "" {
		req.Header.Set("Content-Type", file.ContentType)
	}
	// Presigned headers are part of the signature; send them verbatim.
	for _, h := range target.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := u.http.Do(req)
	if err != nil {
		return "", apperrors.MapTransportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		u.logger.WarnContext(ctx, "document upload rejected by storage",
			"doc_type", target.DocType,
			"status", resp.StatusCode,
		)
		return "", apperrors.Transport(nil,
			fmt.Sprintf("storage rejected %s upload with status %d", target.DocType, resp.StatusCode))
	}

	etag := strings.Trim(resp.Header.Get("ETag"), `"`)
	u.logger.DebugContext(ctx, "document uploaded",
		"doc_type", target.DocType,
		"key", target.Key,
		"size_bytes", file.Size,
		"etag", etag,
	)
	return etag, nil
}
