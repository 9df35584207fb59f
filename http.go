package worldclock

import (
	"context"
	"net/http"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
	"github.com/goliatone/go-worldclock/middleware/jwtware"
)

// RouteAuthenticator guards routes with bearer token authentication and
// resolves the token's account before the handler runs.
type RouteAuthenticator struct {
	auth         Authenticator
	repo         RepositoryManager
	cfg          Config
	Logger       Logger
	ErrorHandler func(c router.Context, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, repo RepositoryManager, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:    cfg,
		auth:   auther,
		repo:   repo,
		Logger: defLogger{},
	}

	a.ErrorHandler = a.defaultErrHandler

	return a, nil
}

func (a *RouteAuthenticator) WithLogger(l Logger) *RouteAuthenticator {
	a.Logger = l
	return a
}

// ProtectedRoute validates the bearer token, loads the account it names,
// and exposes both through locals and the request context. A token whose
// account no longer exists is rejected the same way as a bad token.
func (a *RouteAuthenticator) ProtectedRoute() router.MiddlewareFunc {
	gate := jwtware.New(jwtware.Config{
		ErrorHandler: a.MakeAuthErrorHandler(),
		SigningKey: jwtware.SigningKey{
			Key:    []byte(a.cfg.GetSigningKey()),
			JWTAlg: a.cfg.GetSigningMethod(),
		},
		AuthScheme:     a.cfg.GetAuthScheme(),
		ContextKey:     a.cfg.GetContextKey(),
		TokenLookup:    a.cfg.GetTokenLookup(),
		TokenValidator: routerTokenValidator{auth: a.auth},
		SuccessHandler: a.resolveAccount,
		ContextEnricher: func(ctx context.Context, claims jwtware.AuthClaims) context.Context {
			if ac, ok := claims.(AuthClaims); ok {
				return WithClaimsContext(ctx, ac)
			}
			return ctx
		},
	})

	return gate
}

func (a *RouteAuthenticator) resolveAccount(ctx router.Context) error {
	claims, ok := GetRouterClaims(ctx, a.cfg.GetContextKey())
	if !ok {
		return a.ErrorHandler(ctx, ErrUnableToMapClaims)
	}

	user, err := a.repo.Users().GetByID(ctx.Context(), claims.UserID())
	if err != nil {
		a.Logger.Warn("ProtectedRoute account lookup failed: %v", err)
		return a.ErrorHandler(ctx, ErrIdentityNotFound)
	}

	ctx.Locals(DefaultUserLocalsKey, user)
	ctx.SetContext(WithContext(ctx.Context(), user))

	return ctx.Next()
}

// MakeAuthErrorHandler renders every gate failure as a 401 JSON envelope.
// Missing, malformed, expired, and orphaned tokens all look the same to
// the caller.
func (a *RouteAuthenticator) MakeAuthErrorHandler() func(router.Context, error) error {
	return func(ctx router.Context, err error) error {
		var richErr *errors.Error

		if IsTokenExpiredError(err) {
			richErr = ErrTokenExpired
		} else if IsMalformedError(err) {
			richErr = ErrTokenMalformed
		} else if !errors.As(err, &richErr) {
			richErr = errors.Wrap(err, errors.CategoryAuth, "Invalid authentication token").
				WithCode(errors.CodeUnauthorized)
		}

		a.Logger.Info("Auth gate rejected request: %s path=%s", richErr.Message, ctx.OriginalURL())

		return ctx.JSON(http.StatusUnauthorized, AuthResponse{
			Success: false,
			Message: richErr.Message,
		})
	}
}

func (a *RouteAuthenticator) defaultErrHandler(c router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryAuth, "An unexpected authentication error").
			WithCode(errors.CodeUnauthorized)
	}

	return c.JSON(http.StatusUnauthorized, AuthResponse{
		Success: false,
		Message: richErr.Message,
	})
}

// routerTokenValidator adapts the Authenticator to the middleware's
// validator interface, which returns the mirror claims type.
type routerTokenValidator struct {
	auth Authenticator
}

func (v routerTokenValidator) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := v.auth.ClaimsFromToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

var _ jwtware.TokenValidator = routerTokenValidator{}
