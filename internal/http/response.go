package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/internal/otel"
)

// WriteJsonResponse writes the body map as JSON. When the body carries a
// "statusCode" entry it is used as the HTTP status.
func WriteJsonResponse(
	c context.Context,
	w http.ResponseWriter,
	header map[string]string,
	body map[string]interface{},
) {
	c, span := otel.Tracer.Start(c, "WriteJsonResponse")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str("tag", "WriteJsonResponse").Logger()

	w.Header().Add(HeaderContentType, HeaderValueJson)
	for k, v := range header {
		w.Header().Add(k, v)
	}

	if v, ok := body["statusCode"]; ok {
		w.WriteHeader(v.(int))
	}

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}

// WriteJson writes v verbatim, for endpoints whose payload shape is part of
// the client contract and must not be wrapped in the response envelope.
func WriteJson(c context.Context, w http.ResponseWriter, statusCode int, v interface{}) {
	c, span := otel.Tracer.Start(c, "WriteJson")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str("tag", "WriteJson").Logger()

	w.Header().Add(HeaderContentType, HeaderValueJson)
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
}
