package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/internal/auth"
	"github.com/arvanshad/bazaar/internal/config"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
	inHttp "github.com/arvanshad/bazaar/internal/http"
	"github.com/arvanshad/bazaar/internal/log"
	"github.com/arvanshad/bazaar/internal/middleware"
	inOtel "github.com/arvanshad/bazaar/internal/otel"
	"github.com/arvanshad/bazaar/user/internal/otel"
	"github.com/arvanshad/bazaar/user/internal/service"
	"github.com/arvanshad/bazaar/user/pkg/request"
)

type UserController struct {
	service *service.UserService
}

func AttachUserController(
	router *mux.Router,
	service *service.UserService,
	cfg config.Application,
) {
	controller := UserController{service: service}

	router.HandleFunc("/login", controller.Login).Methods(http.MethodPost)
	router.HandleFunc("/signup", controller.Signup).Methods(http.MethodPost)

	profile := router.PathPrefix("/profile").Subrouter()
	profile.Use(middleware.Auth(cfg))
	profile.HandleFunc("", controller.Profile).Methods(http.MethodGet)
	profile.HandleFunc("", controller.UpdateProfile).Methods(http.MethodPut)
}

func (t UserController) Login(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Login").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	reqBody := request.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing phone or password",
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing phone or password",
		})
		return
	}

	logger = logger.With().
		Object(log.KeyRequestBody, reqBody).
		Str(log.KeyProcess, "logging in").
		Logger()
	logger.Info().Msg("logging in")
	c = logger.WithContext(c)
	authResponse, err := t.service.Login(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed logging in with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": inErrors.StatusCode(err),
			"message":    "invalid credentials",
		})
		return
	}
	logger.Info().Msg("logged in")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"statusCode": http.StatusOK,
		"token":      authResponse.Token,
		"user_id":    authResponse.UserID,
	})
}

func (t UserController) Signup(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Signup")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Signup").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	reqBody := request.SignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing name, phone or password",
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing name, phone or password",
		})
		return
	}

	logger = logger.With().
		Object(log.KeyRequestBody, reqBody).
		Str(log.KeyProcess, "signing up").
		Logger()
	logger.Info().Msg("signing up")
	c = logger.WithContext(c)
	authResponse, err := t.service.Signup(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed signing up with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": inErrors.StatusCode(err),
			"message":    "failed creating account",
		})
		return
	}
	logger.Info().Msg("signed up")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"statusCode": http.StatusOK,
		"token":      authResponse.Token,
		"user_id":    authResponse.UserID,
	})
}

func (t UserController) Profile(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Profile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Profile").
		Logger()

	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    inErrors.ErrTokenInvalid.Error(),
		})
		return
	}
	logger = logger.With().Int64(log.KeyUserID, userID).Logger()

	logger = logger.With().Str(log.KeyProcess, "finding profile").Logger()
	logger.Info().Msg("finding profile")
	c = logger.WithContext(c)
	user, err := t.service.Profile(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding profile with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": inErrors.StatusCode(err),
			"message":    "failed fetching profile",
		})
		return
	}
	logger.Info().Msg("found profile")

	inHttp.WriteJson(c, w, http.StatusOK, user)
}

func (t UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController UpdateProfile")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController UpdateProfile").
		Logger()

	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    inErrors.ErrTokenInvalid.Error(),
		})
		return
	}
	logger = logger.With().Int64(log.KeyUserID, userID).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	reqBody := request.UpdateProfile{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing name or phone",
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    "missing name or phone",
		})
		return
	}

	logger = logger.With().Str(log.KeyProcess, "updating profile").Logger()
	logger.Info().Msg("updating profile")
	c = logger.WithContext(c)
	user, err := t.service.UpdateProfile(c, userID, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating profile with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": inErrors.StatusCode(err),
			"message":    "failed updating profile",
		})
		return
	}
	logger.Info().Msg("updated profile")

	inHttp.WriteJson(c, w, http.StatusOK, user)
}
