// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	texttemplate "text/template"
)

const (
	CryptoOrderAdmin    = "crypto-order-admin"
	CryptoOrderCustomer = "crypto-order-customer"
	Welcome             = "welcome"
	OrderStatus         = "order-status"
)

const (
	subjectSuffix = ".subject.tmpl"
	bodySuffix    = ".html.tmpl"
)

//go:embed emails/*.tmpl
var emailsFS embed.FS

type emailTemplate struct {
	subject *texttemplate.Template
	body    *htmltemplate.Template
}

// Renderer renders embedded email templates by name. It is safe for
// concurrent use once constructed.
type Renderer struct {
	templates map[string]emailTemplate
}

// NewRenderer parses every embedded template pair.
func NewRenderer() (*Renderer, error) {
	return newRenderer(emailsFS, "emails")
}

func newRenderer(fsys fs.FS, dir string) (*Renderer, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingTemplates, err)
	}

	r := &Renderer{templates: make(map[string]emailTemplate)}
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), bodySuffix)
		if !ok {
			continue
		}

		subject, err := texttemplate.New(name+subjectSuffix).
			ParseFS(fsys, path.Join(dir, name+subjectSuffix))
		if err != nil {
			return nil, fmt.Errorf("%w: %s subject: %w", ErrParsingTemplates, name, err)
		}

		body, err := htmltemplate.New(name+bodySuffix).
			ParseFS(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s body: %w", ErrParsingTemplates, name, err)
		}

		r.templates[name] = emailTemplate{subject: subject, body: body}
	}

	return r, nil
}

// Render executes the named template with data and returns the subject with
// surrounding whitespace removed, and the HTML body.
func (r *Renderer) Render(name string, data map[string]any) (string, string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	var subject bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return "", "", fmt.Errorf("%w: %s subject: %w", ErrRenderingTemplate, name, err)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("%w: %s body: %w", ErrRenderingTemplate, name, err)
	}

	return strings.TrimSpace(subject.String()), body.String(), nil
}

// Names returns the sorted names of all available templates.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
