// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IdentityUser is an account known to the identity provider.
//
// With Firebase the record is owned by Firebase Auth and only UID, Email and
// Admin are mapped. The local development provider persists it in the
// "identity_users" table.
type IdentityUser struct {
	// UID is the provider-assigned user identifier.
	UID string `gorm:"primaryKey;column:uid" json:"uid"`

	// Email is unique per provider.
	Email string `gorm:"column:email;uniqueIndex" json:"email"`

	// Admin mirrors the "admin" custom claim.
	Admin bool `gorm:"column:admin" json:"admin"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the IdentityUser model.
func (IdentityUser) TableName() string {
	return "identity_users"
}
