// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

const httpEmailProvider = "http"

type httpEmailSender struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// NewHTTPEmailSender constructs an [EmailSender] for a JSON email API that
// accepts POST {base}/emails with a bearer API key and answers {"id": "..."}.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a valid URL.
func NewHTTPEmailSender(cfg config.Email, log *logger.Logger) (EmailSender, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid email api url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetAuthToken(cfg.APIKey)

	return &httpEmailSender{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [EmailSender]. Non-2xx answers are mapped by mapHTTPError.
func (h *httpEmailSender) Send(ctx context.Context, msg models.EmailMessage) (models.EmailReceipt, error) {
	var out sendEmailResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&out).
		Post("/emails")
	if err != nil {
		return models.EmailReceipt{}, fmt.Errorf("send email request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EmailReceipt{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpEmailSender.Send").
		Str("email_id", out.ID).
		Strs("to", msg.To).
		Msg("email accepted by provider")

	return models.EmailReceipt{ID: out.ID, Provider: httpEmailProvider}, nil
}
