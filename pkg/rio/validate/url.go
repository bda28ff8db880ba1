package validate

import (
	"bufio"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// docTypeToken is matched literally: case- and spacing-sensitive.
const docTypeToken = "<!DOCTYPE html>"

// DocTypeFound reports whether the given line carries the HTML
// document-type declaration. It inspects the one line it is given,
// typically the first line of a document; no multi-line scan.
func DocTypeFound(line string) bool {
	return strings.Contains(line, docTypeToken)
}

// URLValidator checks remote HTTP(S) resources.
type URLValidator struct {
	logger *zap.Logger
	client *http.Client
}

var _ Validator = URLValidator{}

func NewURLValidator(opts ...Option) URLValidator {
	o := newOptions(opts...)
	return URLValidator{logger: o.logger, client: o.client}
}

// Exists probes the endpoint with a header-only request and reports
// true iff it answers with a success status. Transport errors and
// malformed URLs collapse to false.
func (v URLValidator) Exists(rawURL string) bool {
	resp, err := v.client.Head(rawURL)
	if err != nil {
		v.logger.Debug("url probe failed", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		v.logger.Debug("url probe rejected",
			zap.String("url", rawURL), zap.Int("http_status_code", resp.StatusCode))
		return false
	}
	return true
}

// Validate fetches the resource and reports true iff it is reachable
// and its first line carries the HTML doctype declaration.
func (v URLValidator) Validate(rawURL string) bool {
	resp, err := v.client.Get(rawURL)
	if err != nil {
		v.logger.Debug("url fetch failed", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		v.logger.Debug("url fetch rejected",
			zap.String("url", rawURL), zap.Int("http_status_code", resp.StatusCode))
		return false
	}

	first, err := bufio.NewReader(resp.Body).ReadString('\n')
	if err != nil && first == "" {
		v.logger.Debug("url body unreadable", zap.String("url", rawURL), zap.Error(err))
		return false
	}
	return DocTypeFound(first)
}
