/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Reefdesk Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server serves the table pages over HTTP. Each request runs the
// full view pipeline; there is no per-user state on the server side, the
// whole view state travels in the URL.
package server

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/safehtml"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reefdesk/tabular/core/query"
	"github.com/reefdesk/tabular/core/rendering"
	"github.com/reefdesk/tabular/core/views"
	"github.com/reefdesk/tabular/datasources"
)

const tablePath = "/table"

// Server holds the datasets and renders their pages.
type Server struct {
	log      *zap.Logger
	renderer *rendering.PageRenderer
	registry *datasources.Registry

	// Landing page heading.
	Title    string
	Subtitle string
}

// New creates a server for the given registry.
func New(log *zap.Logger, registry *datasources.Registry) (*Server, error) {
	renderer, err := rendering.NewPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return &Server{
		log:      log,
		renderer: renderer,
		registry: registry,
		Title:    "Back office",
		Subtitle: "Operational tables",
	}, nil
}

// Handler returns the HTTP handler serving the landing and table pages.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLanding)
	mux.HandleFunc(tablePath, s.handleTable)
	return s.withLogging(mux)
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	vm := views.LandingViewModel{Title: s.Title, Subtitle: s.Subtitle}
	for _, d := range s.registry.List() {
		vm.Tables = append(vm.Tables, views.TableInfo{
			Name:        d.Title,
			Description: d.Description,
			URL:         tableURL(d.Name),
			RecordCount: len(d.Rows),
			ColumnCount: len(d.Columns),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderLanding(w, vm); err != nil {
		s.log.Error("rendering landing page", zap.Error(err))
	}
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := r.URL.Query().Get("table")
	if name == "" {
		http.Error(w, "table parameter is required", http.StatusBadRequest)
		return
	}
	dataset, ok := s.registry.Get(name)
	if !ok {
		http.Error(w, fmt.Sprintf("table %q not found", name), http.StatusNotFound)
		return
	}

	codec := query.Codec{
		Path:     tablePath,
		Base:     url.Values{"table": {name}},
		Defaults: dataset.Defaults,
	}
	st := codec.Parse(r.URL)

	vm := views.BuildTableViewModel(dataset.ViewConfig(), dataset.Rows, st, codec)
	vm.RenderTimeMs = fmt.Sprintf("%.2f", float64(time.Since(start).Microseconds())/1000.0)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderTable(w, vm); err != nil {
		s.log.Error("rendering table page",
			zap.String("table", name),
			zap.Error(err))
	}
}

// tableURL builds the landing-page link to a dataset.
func tableURL(name string) safehtml.URL {
	q := url.Values{"table": {name}}
	u := &url.URL{Path: tablePath, RawQuery: q.Encode()}
	return safehtml.URLSanitized(u.String())
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// withLogging logs each request with a generated request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.Info("request",
			zap.String("request_id", uuid.NewString()),
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)))
	})
}
