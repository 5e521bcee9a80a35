// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identityUserColumns = []string{"uid", "email", "admin", "created_at"}

var (
	selectByEmail = regexp.QuoteMeta(`SELECT * FROM "identity_users" WHERE email = $1`)
	selectByUID   = regexp.QuoteMeta(`SELECT * FROM "identity_users" WHERE uid = $1`)
	insertUser    = regexp.QuoteMeta(`INSERT INTO "identity_users"`)
	updateAdmin   = regexp.QuoteMeta(`UPDATE "identity_users" SET "admin"=$1 WHERE uid = $2`)
)

// ─────────────────────────────────────────────────────────────
// FindOrCreateByEmail
// ─────────────────────────────────────────────────────────────

func TestFindOrCreateByEmail_Existing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByEmail).
		WillReturnRows(sqlmock.NewRows(identityUserColumns).
			AddRow("uid-existing", "admin@example.com", true, time.Now()))

	user, err := repo.FindOrCreateByEmail(context.Background(), "admin@example.com", "uid-new")
	require.NoError(t, err)
	assert.Equal(t, "uid-existing", user.UID)
	assert.True(t, user.Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateByEmail_CreatesMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByEmail).
		WillReturnRows(sqlmock.NewRows(identityUserColumns))
	mock.ExpectExec(insertUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.FindOrCreateByEmail(context.Background(), "new@example.com", "uid-new")
	require.NoError(t, err)
	assert.Equal(t, "uid-new", user.UID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.Admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateByEmail_ConcurrentInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByEmail).
		WillReturnRows(sqlmock.NewRows(identityUserColumns))
	mock.ExpectExec(insertUser).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectQuery(selectByEmail).
		WillReturnRows(sqlmock.NewRows(identityUserColumns).
			AddRow("uid-winner", "race@example.com", false, time.Now()))

	user, err := repo.FindOrCreateByEmail(context.Background(), "race@example.com", "uid-loser")
	require.NoError(t, err)
	assert.Equal(t, "uid-winner", user.UID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateByEmail_LookupError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByEmail).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindOrCreateByEmail(context.Background(), "a@example.com", "uid")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindOrCreateByEmail_InsertError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByEmail).
		WillReturnRows(sqlmock.NewRows(identityUserColumns))
	mock.ExpectExec(insertUser).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.FindOrCreateByEmail(context.Background(), "a@example.com", "uid")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────────────────────
// SetAdmin
// ─────────────────────────────────────────────────────────────

func TestSetAdmin_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectExec(updateAdmin).
		WithArgs(true, "uid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetAdmin(context.Background(), "uid-1", true)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAdmin_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectExec(updateAdmin).
		WithArgs(true, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetAdmin(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrIdentityUserNotFound)
}

func TestSetAdmin_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectExec(updateAdmin).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.SetAdmin(context.Background(), "uid-1", true)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────────────────────
// FindByUID
// ─────────────────────────────────────────────────────────────

func TestFindByUID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByUID).
		WillReturnRows(sqlmock.NewRows(identityUserColumns).
			AddRow("uid-1", "a@example.com", false, time.Now()))

	user, err := repo.FindByUID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestFindByUID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByUID).
		WillReturnRows(sqlmock.NewRows(identityUserColumns))

	_, err := repo.FindByUID(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrIdentityUserNotFound)
}

func TestFindByUID_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityUserRepository(db, logger.Nop())

	mock.ExpectQuery(selectByUID).
		WillReturnError(errors.New("boom"))

	_, err := repo.FindByUID(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
