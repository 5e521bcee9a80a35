// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package templates holds the embedded email templates and renders them into
// a subject line and an HTML body.
//
// Every template is a pair of files under emails/: <name>.subject.tmpl,
// executed with text/template, and <name>.html.tmpl, executed with
// html/template so that user-supplied values are escaped in the body.
package templates
