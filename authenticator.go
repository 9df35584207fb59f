package worldclock

import (
	"context"
	"reflect"
)

type Auther struct {
	provider        IdentityProvider
	signingKey      []byte
	tokenExpiration int
	issuer          string
	audience        []string
	logger          Logger
	tokenService    TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:        provider,
		signingKey:      []byte(opts.GetSigningKey()),
		tokenExpiration: opts.GetTokenExpiration(),
		audience:        opts.GetAudience(),
		issuer:          opts.GetIssuer(),
		logger:          defLogger{},
		tokenService:    tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	// Update the TokenService logger as well
	s.tokenService = NewTokenService(
		s.signingKey,
		s.tokenExpiration,
		s.issuer,
		s.audience,
		logger,
	)
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials against the identity provider and returns
// a signed JWT for the matched account.
func (s *Auther) Login(ctx context.Context, identifier, password string) (string, error) {
	var err error
	var identity Identity

	if identity, err = s.provider.VerifyIdentity(ctx, identifier, password); err != nil {
		s.logger.Error("Login verify identity error: %v", err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrIdentityNotFound
	}

	return s.IssueToken(identity)
}

// IssueToken signs a token for an already verified identity. Registration
// uses this to log the new account in without a second credential check.
func (s *Auther) IssueToken(identity Identity) (string, error) {
	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("IssueToken failed to generate JWT: %v", err)
		return "", err
	}
	return token, nil
}

// ClaimsFromToken validates a raw token string and returns its claims
func (s *Auther) ClaimsFromToken(token string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(token)
	if err != nil {
		s.logger.Error("ClaimsFromToken validation failed: %v", err)
		return nil, err
	}
	return claims, nil
}

var _ Authenticator = (*Auther)(nil)
