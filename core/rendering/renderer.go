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

// Package rendering turns view models into HTML pages. Templates are
// embedded and parsed through safehtml, so every dynamic link has to
// arrive as a safehtml.URL and every raw fragment as a safehtml.HTML.
package rendering

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"

	"github.com/reefdesk/tabular/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// PageRenderer renders the table and landing pages.
type PageRenderer struct {
	tableTemplate   *template.Template
	landingTemplate *template.Template
}

// NewPageRenderer parses the embedded templates.
func NewPageRenderer() (*PageRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, fmt.Errorf("parsing table template: %w", err)
	}

	landingTemplate, err := template.New("landing.html").ParseFS(trustedFS, "templates/landing.html")
	if err != nil {
		return nil, fmt.Errorf("parsing landing template: %w", err)
	}

	return &PageRenderer{
		tableTemplate:   tableTemplate,
		landingTemplate: landingTemplate,
	}, nil
}

// RenderTable writes the table page for the given view model.
func (r *PageRenderer) RenderTable(w io.Writer, vm views.TableViewModel) error {
	return r.tableTemplate.Execute(w, vm)
}

// RenderLanding writes the landing page listing the available tables.
func (r *PageRenderer) RenderLanding(w io.Writer, vm views.LandingViewModel) error {
	return r.landingTemplate.Execute(w, vm)
}
