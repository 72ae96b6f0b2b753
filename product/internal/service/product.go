package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/internal/log"
	inOtel "github.com/arvanshad/bazaar/internal/otel"
	"github.com/arvanshad/bazaar/internal/repository"
	"github.com/arvanshad/bazaar/product/internal/otel"
	"github.com/arvanshad/bazaar/product/pkg/response"
)

const (
	cacheKeyProducts           = "products:all"
	cacheKeyProductsByCategory = "products:category:%s"
	cacheTTL                   = time.Hour
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache}
}

// FindProducts lists the catalog, optionally filtered by exact category
// match. An unknown category yields an empty list, not an error.
func (svc ProductService) FindProducts(
	c context.Context,
	category string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	cacheKey := cacheKeyProducts
	if category != "" {
		cacheKey = fmt.Sprintf(cacheKeyProductsByCategory, category)
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeyCategory, category).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in cache").Logger()
	jsonCache, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		products := []response.Product{}
		if err := json.Unmarshal([]byte(jsonCache), &products); err == nil {
			logger.Info().Msg("found products in cache")
			return products, nil
		}
		logger.Info().Msg("failed unmarshaling cached products, falling back to database")
	}

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Info().Msg("finding products in database")
	var rows []repository.Product
	if category == "" {
		rows, err = svc.queries.FindProducts(c)
	} else {
		rows, err = svc.queries.FindProductsByCategory(c, category)
	}
	if err != nil {
		err = fmt.Errorf("failed finding products category=%q with error=%w", category, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	products := make([]response.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.Response())
	}
	logger.Info().Msgf("found %d products in database", len(products))

	logger = logger.With().Str(log.KeyProcess, "inserting products to cache").Logger()
	encoded, err := json.Marshal(products)
	if err != nil {
		err = fmt.Errorf("failed marshaling products for cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return products, nil
	}
	if err := svc.cache.Set(c, cacheKey, encoded, cacheTTL).Err(); err != nil {
		err = fmt.Errorf("failed inserting products to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return products, nil
	}
	logger.Info().Msg("inserted products to cache")

	return products, nil
}
