// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/models"
	"github.com/jackc/pgerrcode"
)

// identityUserRepository is the GORM-backed implementation of
// [IdentityUserRepository] over the "identity_users" table.
type identityUserRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIdentityUserRepository constructs an [IdentityUserRepository] backed by
// the provided database connection and logger.
func NewIdentityUserRepository(db *DB, logger *logger.Logger) IdentityUserRepository {
	logger.Debug().Msg("creating identity user repository")
	return &identityUserRepository{
		db:     db,
		logger: logger,
	}
}

// FindOrCreateByEmail looks the user up by email and inserts a new non-admin
// user with the given uid when none exists.
//
// A unique_violation (23505) on insert means a concurrent request created the
// same email first; the existing row is read and returned.
func (r *identityUserRepository) FindOrCreateByEmail(ctx context.Context, email, uid string) (models.IdentityUser, error) {
	const funcName = "*identityUserRepository.FindOrCreateByEmail"

	user, err := r.findByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !isRecordNotFound(err) {
		return models.IdentityUser{}, r.db.wrapQueryError(ctx, funcName, err)
	}

	user = models.IdentityUser{UID: uid, Email: email}
	if err = r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			if user, err = r.findByEmail(ctx, email); err == nil {
				return user, nil
			}
		}
		return models.IdentityUser{}, r.db.wrapQueryError(ctx, funcName, err)
	}

	logger.FromContext(ctx).Info().Str("func", funcName).Str("uid", uid).Msg("identity user provisioned")
	return user, nil
}

// SetAdmin sets the admin flag of the user with uid.
func (r *identityUserRepository) SetAdmin(ctx context.Context, uid string, admin bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.IdentityUser{}).
		Where("uid = ?", uid).
		Update("admin", admin)
	if result.Error != nil {
		return r.db.wrapQueryError(ctx, "*identityUserRepository.SetAdmin", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrIdentityUserNotFound
	}

	return nil
}

// FindByUID returns the user with uid.
func (r *identityUserRepository) FindByUID(ctx context.Context, uid string) (models.IdentityUser, error) {
	var user models.IdentityUser

	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error
	if err != nil {
		if isRecordNotFound(err) {
			return models.IdentityUser{}, ErrIdentityUserNotFound
		}
		return models.IdentityUser{}, r.db.wrapQueryError(ctx, "*identityUserRepository.FindByUID", err)
	}

	return user, nil
}

func (r *identityUserRepository) findByEmail(ctx context.Context, email string) (models.IdentityUser, error) {
	var user models.IdentityUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, err
}
