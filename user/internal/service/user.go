package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/arvanshad/bazaar/internal/auth"
	"github.com/arvanshad/bazaar/internal/config"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
	"github.com/arvanshad/bazaar/internal/log"
	inOtel "github.com/arvanshad/bazaar/internal/otel"
	"github.com/arvanshad/bazaar/internal/repository"
	"github.com/arvanshad/bazaar/user/internal/otel"
	"github.com/arvanshad/bazaar/user/pkg/request"
	"github.com/arvanshad/bazaar/user/pkg/response"
)

type UserService struct {
	queries *repository.Queries
	config  config.Application
}

func NewUserService(queries *repository.Queries, config config.Application) UserService {
	return UserService{queries: queries, config: config}
}

func (svc UserService) Login(c context.Context, param request.LoginRequest) (response.Auth, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyPhone, param.Phone).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding user by phone").Logger()
	logger.Info().Msg("finding user by phone")
	user, err := svc.queries.FindUserByPhone(c, param.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding user phone=%s with error=%w", param.Phone, inErrors.ErrUserNotFound)
		} else {
			err = fmt.Errorf("failed finding user phone=%s with error=%w", param.Phone, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Auth{}, err
	}
	logger.Info().Msg("found user by phone")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password))
	if err != nil {
		inOtel.RecordError(inErrors.ErrPasswordMismatch, span)
		logger.Error().Err(inErrors.ErrPasswordMismatch).Msg(inErrors.ErrPasswordMismatch.Error())
		return response.Auth{}, inErrors.ErrPasswordMismatch
	}
	logger.Info().Msg("verified password")

	logger = logger.With().Str(log.KeyProcess, "signing token").Logger()
	token, err := auth.CreateToken(user.ID, svc.config)
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Auth{}, err
	}
	logger.Info().Msg("signed token")

	return response.Auth{Token: token, UserID: user.ID}, nil
}

func (svc UserService) Signup(
	c context.Context,
	param request.SignupRequest,
) (response.Auth, error) {
	c, span := otel.Tracer.Start(c, "UserService Signup")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Signup").
		Str(log.KeyPhone, param.Phone).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "hashing password").Logger()
	hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		err = fmt.Errorf("failed hashing password with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Auth{}, err
	}
	logger.Info().Msg("hashed password")

	logger = logger.With().Str(log.KeyProcess, "inserting user to database").Logger()
	logger.Info().Msg("inserting user to database")
	user, err := svc.queries.InsertUser(c, repository.InsertUserParams{
		Name:      param.Name,
		Phone:     param.Phone,
		Password:  string(hashed),
		Addresses: []byte("[]"),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting user phone=%s with error=%w", param.Phone, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Auth{}, err
	}
	logger = logger.With().Int64(log.KeyUserID, user.ID).Logger()
	logger.Info().Msg("inserted user to database")

	logger = logger.With().Str(log.KeyProcess, "signing token").Logger()
	token, err := auth.CreateToken(user.ID, svc.config)
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Auth{}, err
	}
	logger.Info().Msg("signed token")

	return response.Auth{Token: token, UserID: user.ID}, nil
}

func (svc UserService) Profile(c context.Context, userID int64) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService Profile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Profile").
		Int64(log.KeyUserID, userID).
		Str(log.KeyProcess, "finding user by id").
		Logger()

	logger.Info().Msg("finding user by id")
	user, err := svc.queries.FindUserById(c, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed finding userId=%d with error=%w", userID, inErrors.ErrUserNotFound)
		} else {
			err = fmt.Errorf("failed finding userId=%d with error=%w", userID, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("found user by id")

	return mapUser(user)
}

func (svc UserService) UpdateProfile(
	c context.Context,
	userID int64,
	param request.UpdateProfile,
) (response.User, error) {
	c, span := otel.Tracer.Start(c, "UserService UpdateProfile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService UpdateProfile").
		Int64(log.KeyUserID, userID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "marshaling addresses").Logger()
	addresses, err := json.Marshal(param.Addresses)
	if err != nil {
		err = fmt.Errorf("failed marshaling addresses with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "updating user in database").Logger()
	logger.Info().Msg("updating user in database")
	user, err := svc.queries.UpdateUser(c, repository.UpdateUserParams{
		ID:        userID,
		Name:      param.Name,
		Phone:     param.Phone,
		Addresses: addresses,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("failed updating userId=%d with error=%w", userID, inErrors.ErrUserNotFound)
		} else {
			err = fmt.Errorf("failed updating userId=%d with error=%w", userID, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.User{}, err
	}
	logger.Info().Msg("updated user in database")

	return mapUser(user)
}

func mapUser(user repository.User) (response.User, error) {
	addresses := []response.Address{}
	if len(user.Addresses) > 0 {
		if err := json.Unmarshal(user.Addresses, &addresses); err != nil {
			return response.User{}, fmt.Errorf("failed unmarshaling addresses with error=%w", err)
		}
	}
	return response.User{
		ID:        user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Addresses: addresses,
	}, nil
}
