// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmPrefix marks a config value as a reference to an AWS SSM parameter,
// e.g. "ssm:/crypto-admin/prod/email-api-key".
const ssmPrefix = "ssm:"

// ParameterStore is the subset of the SSM client used to resolve secrets.
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func newSSMParameterStore(ctx context.Context) (ParameterStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return ssm.NewFromConfig(awsCfg), nil
}

// secretFields lists the values that may hold "ssm:" references.
func (cfg *StructuredConfig) secretFields() []*string {
	return []*string{
		&cfg.App.AdminBootstrapKey,
		&cfg.App.TokenSignKey,
		&cfg.Storage.DB.DSN,
		&cfg.Firebase.CredentialsJSON,
		&cfg.Email.APIKey,
	}
}

func (cfg *StructuredConfig) hasSecretRefs() bool {
	for _, field := range cfg.secretFields() {
		if strings.HasPrefix(*field, ssmPrefix) {
			return true
		}
	}
	return false
}

// resolveSecrets replaces every "ssm:" reference with the decrypted parameter
// value fetched from store.
func resolveSecrets(ctx context.Context, cfg *StructuredConfig, store ParameterStore) error {
	for _, field := range cfg.secretFields() {
		name, ok := strings.CutPrefix(*field, ssmPrefix)
		if !ok {
			continue
		}

		out, err := store.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrResolvingSecret, name, err)
		}
		if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
			return fmt.Errorf("%w %s: empty parameter", ErrResolvingSecret, name)
		}

		*field = aws.ToString(out.Parameter.Value)
	}

	return nil
}
