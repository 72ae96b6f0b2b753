package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/arvanshad/bazaar/internal/constants"
)

var Tracer = otel.Tracer(constants.AppBazaarServer)
