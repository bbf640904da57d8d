package auth

// UserIdentity adapts a User into the Identity interface for credential
// verification and token issuance.
type UserIdentity struct {
	user *User
}

// NewIdentityFromUser returns an Identity adapter for the provided user.
func NewIdentityFromUser(user *User) Identity {
	if user == nil {
		return nil
	}
	return UserIdentity{user: user}
}

// Email returns the user's email address.
func (u UserIdentity) Email() string {
	if u.user == nil {
		return ""
	}
	return u.user.Email
}

// Salt returns the salt stored on the user record.
func (u UserIdentity) Salt() string {
	if u.user == nil {
		return ""
	}
	return u.user.Salt
}

// PasswordHash returns the password hash stored on the user record.
func (u UserIdentity) PasswordHash() string {
	if u.user == nil {
		return ""
	}
	return u.user.PasswordHash
}
