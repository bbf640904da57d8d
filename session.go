package auth

import "time"

var _ Session = &SessionObject{}

// SessionObject is the value view of a validated token's claims.
type SessionObject struct {
	Subject        string     `json:"subject,omitempty"`
	Audience       []string   `json:"audience,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

func sessionFromClaims(claims *SessionClaims) *SessionObject {
	session := &SessionObject{
		Subject:  claims.Subject(),
		Audience: claims.Audience(),
	}

	if claims.RegisteredClaims.IssuedAt != nil {
		issuedAt := claims.RegisteredClaims.IssuedAt.Time
		session.IssuedAt = &issuedAt
	}

	if claims.RegisteredClaims.ExpiresAt != nil {
		expiresAt := claims.RegisteredClaims.ExpiresAt.Time
		session.ExpirationDate = &expiresAt
	}

	return session
}

func (s *SessionObject) GetSubject() string {
	return s.Subject
}

func (s *SessionObject) GetAudience() []string {
	return s.Audience
}

func (s *SessionObject) GetIssuedAt() *time.Time {
	return s.IssuedAt
}

func (s *SessionObject) GetExpiration() *time.Time {
	return s.ExpirationDate
}
