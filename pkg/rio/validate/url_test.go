package validate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocTypeFound(t *testing.T) {
	t.Parallel()
	assert.True(t, DocTypeFound("<!DOCTYPE html>"))
	assert.True(t, DocTypeFound("  <!DOCTYPE html><html>"))
	assert.False(t, DocTypeFound("<html>"))
	assert.False(t, DocTypeFound("<!doctype html>"), "match is case-sensitive")
	assert.False(t, DocTypeFound("<!DOCTYPE  html>"), "match is spacing-sensitive")
	assert.False(t, DocTypeFound(""))
}

func TestURLValidator_Exists(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	v := NewURLValidator()
	assert.True(t, v.Exists(srv.URL))
}

func TestURLValidator_Exists_NonSuccessStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	v := NewURLValidator()
	assert.False(t, v.Exists(srv.URL))
}

func TestURLValidator_Exists_ProbeErrorCollapsesToFalse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewURLValidator()
	assert.False(t, v.Exists(srv.URL))
	assert.False(t, v.Exists("not a url at all"))
	assert.False(t, v.Exists("http://localhost:-80/"))
}

func TestURLValidator_Validate_HTMLDocument(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<!DOCTYPE html>\n<html></html>\n")) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	v := NewURLValidator()
	assert.True(t, v.Validate(srv.URL))
}

func TestURLValidator_Validate_PlainDocument(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, no markup\n")) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	v := NewURLValidator()
	assert.False(t, v.Validate(srv.URL))
}

func TestURLValidator_Validate_UnreachableCollapsesToFalse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewURLValidator()
	assert.False(t, v.Validate(srv.URL))
}
