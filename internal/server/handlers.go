package server

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/jonathan/resume-page/internal/content"
	"github.com/jonathan/resume-page/internal/rendering"
	"go.uber.org/zap"
)

// ColorSchemeHint is the client hint carrying the preferred color scheme.
const ColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// handleIndex loads the content document and renders a fresh page.
// Failures produce an error page; nothing is partially rendered.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", ColorSchemeHint)
	w.Header().Set("Vary", ColorSchemeHint)

	doc, err := s.loader.Load(r.Context(), s.source)
	if err != nil {
		s.logger.Error("failed to load content", zap.String("source", s.source), zap.Error(err))
		s.errorPage(w, HTTPStatus(err), err.Error())
		return
	}

	page, err := rendering.RenderHTML(doc, s.template, rendering.Options{
		Locale: s.locale,
		Dark:   prefersDark(r, s.dark),
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		s.errorPage(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page)); err != nil {
		s.logger.Warn("failed to write page", zap.Error(err))
	}
}

// handleContent serves the raw content document
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Read(r.Context(), s.source)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if _, err := content.Parse(s.source, data); err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// prefersDark reads the color scheme client hint, falling back when it is absent.
func prefersDark(r *http.Request, fallback bool) bool {
	hint := strings.Trim(strings.TrimSpace(r.Header.Get(ColorSchemeHint)), `"`)
	switch strings.ToLower(hint) {
	case "dark":
		return true
	case "light":
		return false
	default:
		return fallback
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorPage writes a minimal HTML page carrying the error message
func (s *Server) errorPage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>%d %s</title></head><body><p role=\"alert\">%s</p></body></html>\n",
		status, http.StatusText(status), html.EscapeString(message))
}
