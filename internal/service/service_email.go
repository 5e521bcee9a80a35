// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/MKhiriev/crypto-admin-api/internal/adapter"
	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/templates"
	"github.com/MKhiriev/crypto-admin-api/models"
)

// EmailRenderer renders a named email template into a subject and HTML body.
type EmailRenderer interface {
	Render(name string, data map[string]any) (string, string, error)
}

type emailService struct {
	sender   adapter.EmailSender
	renderer EmailRenderer

	// from is the sender address of every message.
	from string
	// adminAddress receives crypto order notifications.
	adminAddress string

	logger *logger.Logger
}

func NewEmailService(sender adapter.EmailSender, renderer EmailRenderer, cfg config.Email, logger *logger.Logger) EmailService {
	return &emailService{
		sender:       sender,
		renderer:     renderer,
		from:         cfg.From,
		adminAddress: cfg.AdminAddress,
		logger:       logger,
	}
}

// SendCryptoOrderEmails renders the order payload for the admin and, when
// the payload names a customer address, for the customer.
//
// Without a configured admin address only the customer copy is sent; with
// neither recipient ErrNoRecipients is returned. The first delivery error
// stops processing.
func (e *emailService) SendCryptoOrderEmails(ctx context.Context, order models.CryptoOrderEmail) error {
	log := logger.FromContext(ctx)
	data := map[string]any(order)

	customerEmail := order.CustomerEmail()
	if e.adminAddress == "" && customerEmail == "" {
		log.Error().Str("func", "emailService.SendCryptoOrderEmails").Msg("no admin address configured and no customer email in order")
		return ErrNoRecipients
	}

	if e.adminAddress == "" {
		log.Warn().Str("func", "emailService.SendCryptoOrderEmails").Msg("admin address is not configured, skipping admin notification")
	} else {
		receipt, err := e.send(ctx, templates.CryptoOrderAdmin, e.adminAddress, data)
		if err != nil {
			return err
		}
		log.Info().Str("receipt_id", receipt.ID).Str("order", order.OrderNumber()).Msg("admin order notification sent")
	}

	if customerEmail != "" {
		receipt, err := e.send(ctx, templates.CryptoOrderCustomer, customerEmail, data)
		if err != nil {
			return err
		}
		log.Info().Str("receipt_id", receipt.ID).Str("order", order.OrderNumber()).Msg("customer order confirmation sent")
	}

	return nil
}

// SendTemplateEmail renders request.Template with the user fields overlaid by
// the test values and sends it to request.User's address.
func (e *emailService) SendTemplateEmail(ctx context.Context, request models.TemplateEmailRequest) (models.EmailReceipt, error) {
	data := make(map[string]any, len(request.User)+len(request.TestValues))
	maps.Copy(data, request.User)
	maps.Copy(data, request.TestValues)

	return e.send(ctx, request.Template, request.User.Email(), data)
}

func (e *emailService) send(ctx context.Context, template, to string, data map[string]any) (models.EmailReceipt, error) {
	log := logger.FromContext(ctx)

	subject, html, err := e.renderer.Render(template, data)
	if err != nil {
		log.Err(err).Str("func", "emailService.send").Str("template", template).Msg("rendering email failed")
		return models.EmailReceipt{}, fmt.Errorf("%w: %w", ErrRenderingEmail, err)
	}

	receipt, err := e.sender.Send(ctx, models.EmailMessage{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		log.Err(err).Str("func", "emailService.send").Str("template", template).Str("to", to).Msg("sending email failed")
		return models.EmailReceipt{}, fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	return receipt, nil
}
