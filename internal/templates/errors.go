// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templates

import "errors"

var (
	ErrTemplateNotFound  = errors.New("email template not found")
	ErrRenderingTemplate = errors.New("error rendering email template")
	ErrParsingTemplates  = errors.New("error parsing email templates")
)
