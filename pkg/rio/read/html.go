package read

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ib-77/rio/pkg/rio"
	"github.com/ib-77/rio/pkg/rio/validate"
)

// OpenHTML opens a line reader over a remote HTML document. The
// factory is total: a malformed URL (a negative port, say), an
// unreachable host or a non-success status all come back as failures.
//
// With WithDocTypeCheck the first line of the body must carry the HTML
// doctype declaration; otherwise the body is closed and a failure is
// returned, so a caller never receives an unvalidated reader.
func OpenHTML(ctx context.Context, rawURL string, opts ...Option) rio.Result[*LineReader] {
	o := newOptions(opts...)

	u, err := url.Parse(rawURL)
	if err != nil {
		o.logger.Warn("malformed url", zap.String("url", rawURL), zap.Error(err))
		return rio.Fail[*LineReader](fmt.Errorf("parse url %s: %w", rawURL, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return rio.Fail[*LineReader](fmt.Errorf("parse url %s: unsupported scheme %q", rawURL, u.Scheme))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return rio.Fail[*LineReader](fmt.Errorf("request %s: %w", rawURL, err))
	}

	resp, err := o.client.Do(req)
	if err != nil {
		o.logger.Warn("open url failed", zap.String("url", rawURL), zap.Error(err))
		return rio.Fail[*LineReader](fmt.Errorf("get %s: %w", rawURL, err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		o.logger.Warn("open url rejected",
			zap.String("url", rawURL), zap.Int("http_status_code", resp.StatusCode))
		return rio.Fail[*LineReader](fmt.Errorf("get %s: unexpected status %s", rawURL, resp.Status))
	}

	o.logger.Debug("url opened", zap.String("url", rawURL),
		zap.Int("http_status_code", resp.StatusCode))

	lr := newLineReader(resp.Body, resp.Body, o)
	if o.docTypeCheck {
		first, err := lr.peekLine()
		if err != nil {
			lr.Close()
			return rio.Fail[*LineReader](fmt.Errorf("read first line of %s: %w", rawURL, err))
		}
		if !validate.DocTypeFound(first) {
			lr.Close()
			return rio.Fail[*LineReader](fmt.Errorf("no doctype declaration in %s", rawURL))
		}
	}
	return rio.Success(lr)
}
