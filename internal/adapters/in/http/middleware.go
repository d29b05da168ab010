package http

import (
	"errors"
	"net/http"
	"strings"

	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// userContextKey is the echo context key the authenticated user is stored under.
const userContextKey = "authenticatedUser"

// NewAuthMiddleware builds the bearer token guard for protected routes.
// Expired tokens get 403, everything else invalid gets 401. The resolved
// account is stored in the request context for handlers that need it.
func NewAuthMiddleware(tokens ports.TokenIssuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return unauthorized(ctx, "Missing bearer token")
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return ctx.JSON(http.StatusForbidden, ErrorResponse{
						Code:    http.StatusForbidden,
						Message: "Token expired",
					})
				}
				return unauthorized(ctx, "Invalid token")
			}

			account, err := users.Get(ctx.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return unauthorized(ctx, "Unknown user")
				}
				return writeError(ctx, err)
			}

			ctx.Set(userContextKey, account)
			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
