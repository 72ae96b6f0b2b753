package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/internal/config"
	"github.com/arvanshad/bazaar/internal/constants"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
	"github.com/arvanshad/bazaar/internal/log"
	"github.com/arvanshad/bazaar/internal/otel"
)

type userId struct{}

func UserIDFromContext(c context.Context) (int64, error) {
	id, ok := c.Value(userId{}).(int64)
	if !ok {
		return 0, inErrors.ErrTokenInvalid
	}
	return id, nil
}

func AttachUserIDToContext(c context.Context, id int64) context.Context {
	return context.WithValue(c, userId{}, id)
}

func CreateToken(userID int64, cfg config.Application) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{constants.AudienceClient},
			Issuer:    constants.AppBazaarServer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	)
	return token.SignedString([]byte(cfg.SecretKey))
}

// VerifyToken parses and validates the signed token and returns the user id
// carried in its subject claim.
func VerifyToken(c context.Context, token string, cfg config.Application) (int64, error) {
	c, span := otel.Tracer.Start(c, "VerifyToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	jwtToken, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SecretKey), nil
		},
		jwt.WithAudience(constants.AudienceClient),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppBazaarServer),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing claims with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, inErrors.ErrTokenInvalid
	}
	if !jwtToken.Valid {
		otel.RecordError(inErrors.ErrTokenInvalid, span)
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return 0, inErrors.ErrTokenInvalid
	}

	subject, err := jwtToken.Claims.GetSubject()
	if err != nil {
		err = fmt.Errorf("failed getting subject claim with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, inErrors.ErrTokenInvalid
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		err = fmt.Errorf("failed parsing subject=%s with error=%w", subject, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, inErrors.ErrTokenInvalid
	}

	return userID, nil
}
