// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/utils"
	"github.com/MKhiriev/crypto-admin-api/models"
)

const logEmailProvider = "log"

// logEmailSender writes messages to the log instead of delivering them.
type logEmailSender struct {
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewLogEmailSender(log *logger.Logger) EmailSender {
	return &logEmailSender{ids: utils.NewUUIDGenerator(), logger: log}
}

func (s *logEmailSender) Send(ctx context.Context, msg models.EmailMessage) (models.EmailReceipt, error) {
	receipt := models.EmailReceipt{ID: s.ids.Generate(), Provider: logEmailProvider}

	logger.FromContext(ctx).Info().
		Str("func", "*logEmailSender.Send").
		Str("email_id", receipt.ID).
		Str("from", msg.From).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.HTML)).
		Msg("email not delivered, logged only")

	return receipt, nil
}
