// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoSessionCookie is logged by the admin session middleware when the
// request carries no "session" cookie.
var ErrNoSessionCookie = errors.New("no `session` cookie")
