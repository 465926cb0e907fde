package domain

// TokenKind discriminates access tokens from refresh tokens inside the signed
// claims, so one can never be presented where the other is required.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)
