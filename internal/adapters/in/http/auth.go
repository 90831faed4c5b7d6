package http

import (
	"net/http"
	"strings"

	"parcelpilot/internal/core/application/usecases/queries"
	"parcelpilot/internal/core/domain/model/account"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// callerEmailKey is the echo context key carrying the authenticated email.
const callerEmailKey = "callerEmail"

// authClaims is the expected JWT payload: the registered claims plus the
// caller's email, which is the identity every capability check runs on.
type authClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// callerEmail returns the authenticated caller's email, or "" on
// unauthenticated routes.
func callerEmail(ctx echo.Context) string {
	email, _ := ctx.Get(callerEmailKey).(string)
	return email
}

// Authenticate verifies the bearer token and stores the caller email in the
// request context. Missing, malformed or unverifiable tokens yield 401.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := &authClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid || claims.Email == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid bearer token",
				})
			}

			ctx.Set(callerEmailKey, claims.Email)
			return next(ctx)
		}
	}
}

// RequireRole guards a route group by role. The caller's role is looked up
// against the account store on every request, so demotions take effect
// immediately; an account that no longer exists yields 403.
func RequireRole(users queries.GetUserQueryHandler, roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			email := callerEmail(ctx)
			if email == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing caller identity",
				})
			}

			query, err := queries.NewGetUserQuery(email)
			if err != nil {
				return respondError(ctx, err)
			}

			user, err := users.Handle(ctx.Request().Context(), query)
			if err != nil {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "caller has no account",
				})
			}

			for _, role := range roles {
				if user.Role == role.String() {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "caller role does not permit this operation",
			})
		}
	}
}
