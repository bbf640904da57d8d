// Package auth implements credential verification and session token issuance
// for email and password authentication.
//
// Passwords are stored as a per-user random salt plus a bcrypt hash of the
// password and salt pair. The salt is rotated on every password change, and
// verification always goes through bcrypt's own comparison entry point;
// hashes are never compared byte for byte.
//
// Session tokens are signed JWTs carrying audience, issued-at, expiry, and
// subject claims. Validation enforces the signature, the configured audience,
// expiry, and the claim schema, and collapses every failure into a small
// typed taxonomy so callers never see library error types.
//
// Storage, HTTP, and configuration loading stay outside this package:
// storage is reached through IdentityProvider, configuration is injected
// through Config, and logging through Logger. UsersStore is a reference
// IdentityProvider backed by Bun for hosts without their own persistence.
package auth
