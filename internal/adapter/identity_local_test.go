// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/crypto-admin-api/internal/config"
	"github.com/MKhiriev/crypto-admin-api/internal/logger"
	"github.com/MKhiriev/crypto-admin-api/internal/mock"
	"github.com/MKhiriev/crypto-admin-api/internal/store"
	"github.com/MKhiriev/crypto-admin-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "local-sign-key"
	testIssuer  = "crypto-admin-api-test"
)

func newTestLocalProvider(t *testing.T) (IdentityProvider, *mock.MockIdentityUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockIdentityUserRepository(ctrl)

	p := NewLocalIdentityProvider(config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, users, logger.Nop())
	return p, users
}

var adminUser = models.IdentityUser{UID: "uid-admin", Email: "admin@example.com", Admin: true}

func TestLocal_FullAdminFlow(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().FindOrCreateByEmail(ctx, "admin@example.com", gomock.Any()).
		Return(models.IdentityUser{UID: "uid-admin", Email: "admin@example.com"}, nil)
	users.EXPECT().SetAdmin(ctx, "uid-admin", true).Return(nil)
	users.EXPECT().FindByUID(ctx, "uid-admin").Return(adminUser, nil).Times(4)

	user, err := p.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NoError(t, p.SetAdminClaim(ctx, user.UID))

	customToken, err := p.CustomToken(ctx, user.UID)
	require.NoError(t, err)

	claims, err := p.VerifyIDToken(ctx, customToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "uid-admin", claims.UID)

	cookie, err := p.CreateSessionCookie(ctx, customToken, time.Hour)
	require.NoError(t, err)

	session, err := p.VerifySessionCookie(ctx, cookie)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestLocal_VerifyIDToken_RejectsSessionCookie(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().FindByUID(ctx, "uid-admin").Return(adminUser, nil).Times(2)

	customToken, err := p.CustomToken(ctx, "uid-admin")
	require.NoError(t, err)
	cookie, err := p.CreateSessionCookie(ctx, customToken, time.Hour)
	require.NoError(t, err)

	_, err = p.VerifyIDToken(ctx, cookie)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocal_VerifySessionCookie_RejectsCustomToken(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().FindByUID(ctx, "uid-admin").Return(adminUser, nil)

	customToken, err := p.CustomToken(ctx, "uid-admin")
	require.NoError(t, err)

	_, err = p.VerifySessionCookie(ctx, customToken)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLocal_VerifySessionCookie_DeletedUserIsRevoked(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindByUID(ctx, "uid-admin").Return(adminUser, nil).Times(2),
		users.EXPECT().FindByUID(ctx, "uid-admin").Return(models.IdentityUser{}, store.ErrIdentityUserNotFound),
	)

	customToken, err := p.CustomToken(ctx, "uid-admin")
	require.NoError(t, err)
	cookie, err := p.CreateSessionCookie(ctx, customToken, time.Hour)
	require.NoError(t, err)

	_, err = p.VerifySessionCookie(ctx, cookie)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestLocal_VerifyIDToken_Garbage(t *testing.T) {
	p, _ := newTestLocalProvider(t)

	_, err := p.VerifyIDToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocal_SetAdminClaim_UnknownUser(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().SetAdmin(ctx, "missing", true).Return(store.ErrIdentityUserNotFound)

	err := p.SetAdminClaim(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLocal_CustomToken_UnknownUser(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().FindByUID(ctx, "missing").Return(models.IdentityUser{}, store.ErrIdentityUserNotFound)

	_, err := p.CustomToken(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLocal_GetUserByEmail_StoreError(t *testing.T) {
	p, users := newTestLocalProvider(t)
	ctx := context.Background()

	users.EXPECT().FindOrCreateByEmail(ctx, "a@example.com", gomock.Any()).
		Return(models.IdentityUser{}, store.ErrExecutingQuery)

	_, err := p.GetUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrIdentity)
}
