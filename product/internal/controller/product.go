package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/arvanshad/bazaar/internal/errors"
	inHttp "github.com/arvanshad/bazaar/internal/http"
	"github.com/arvanshad/bazaar/internal/log"
	inOtel "github.com/arvanshad/bazaar/internal/otel"
	"github.com/arvanshad/bazaar/product/internal/otel"
	"github.com/arvanshad/bazaar/product/internal/service"
)

type ProductController struct {
	service *service.ProductService
}

func AttachProductController(router *mux.Router, service *service.ProductService) {
	controller := ProductController{service: service}

	router.HandleFunc("/products", controller.FindProducts).Methods(http.MethodGet)
}

// FindProducts responds with a bare product array for client compatibility.
func (t ProductController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "ProductController FindProducts")
	defer span.End()

	category := r.URL.Query().Get("category")

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductController FindProducts").
		Str(log.KeyCategory, category).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	products, err := t.service.FindProducts(c, category)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": inErrors.StatusCode(err),
			"message":    "failed fetching products",
		})
		return
	}
	logger.Info().Msgf("found %d products", len(products))

	inHttp.WriteJson(c, w, http.StatusOK, products)
}
