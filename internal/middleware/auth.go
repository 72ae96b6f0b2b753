package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/internal/auth"
	"github.com/arvanshad/bazaar/internal/config"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
	inHttp "github.com/arvanshad/bazaar/internal/http"
	"github.com/arvanshad/bazaar/internal/log"
)

// Auth rejects requests without a valid bearer token and attaches the token's
// user id to the request context.
func Auth(cfg config.Application) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" || !strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
				logger.Error().Err(inErrors.ErrEmptyAuth).Msg(inErrors.ErrEmptyAuth.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrEmptyAuth.Error(),
				})
				return
			}

			token := authorization[len("bearer "):]
			userID, err := auth.VerifyToken(c, token, cfg)
			if err != nil {
				logger.Error().Err(err).Msg(err.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			c = auth.AttachUserIDToContext(c, userID)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}
