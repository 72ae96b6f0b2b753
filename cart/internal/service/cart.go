package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arvanshad/bazaar/cart/internal/otel"
	"github.com/arvanshad/bazaar/cart/pkg/request"
	"github.com/arvanshad/bazaar/cart/pkg/response"
	inErrors "github.com/arvanshad/bazaar/internal/errors"
	"github.com/arvanshad/bazaar/internal/log"
	inOtel "github.com/arvanshad/bazaar/internal/otel"
	"github.com/arvanshad/bazaar/internal/repository"
)

const (
	cacheKeyCartByUser = "carts:user:%d"
	cacheTTL           = time.Hour

	pgForeignKeyViolation = "23503"
)

type CartService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewCartService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) CartService {
	return CartService{pool: pool, queries: queries, cache: cache}
}

// FindCart returns the user's cart lines joined with their product snapshots
// and the total recomputed from those lines.
func (svc CartService) FindCart(c context.Context, userID int64) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	cacheKey := fmt.Sprintf(cacheKeyCartByUser, userID)

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Int64(log.KeyUserID, userID).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart in cache").Logger()
	jsonCache, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil && jsonCache != "" {
		cart := response.Cart{}
		if err := json.Unmarshal([]byte(jsonCache), &cart); err == nil {
			logger.Info().Msg("found cart in cache")
			return cart, nil
		}
		logger.Info().Msg("failed unmarshaling cached cart, falling back to database")
	}

	logger = logger.With().Str(log.KeyProcess, "finding cart in database").Logger()
	logger.Info().Msg("finding cart in database")
	rows, err := svc.queries.FindCartItemsByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding cart for userId=%d with error=%w", userID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	items := make([]response.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Response())
	}
	cart := response.Cart{Items: items}
	cart.Total = cart.ComputeTotal()
	logger.Info().Msgf("found cart with %d items in database", len(items))

	logger = logger.With().Str(log.KeyProcess, "inserting cart to cache").Logger()
	encoded, err := json.Marshal(cart)
	if err != nil {
		err = fmt.Errorf("failed marshaling cart for cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart, nil
	}
	if err := svc.cache.Set(c, cacheKey, encoded, cacheTTL).Err(); err != nil {
		err = fmt.Errorf("failed inserting cart to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart, nil
	}
	logger.Info().Msg("inserted cart to cache")

	return cart, nil
}

// AddCartItem adds the product to the user's cart. When a line for the
// product already exists its quantity is incremented by the requested amount;
// the insert-or-increment is one atomic statement. An unknown product
// surfaces as ErrProductNotFound via the foreign key.
func (svc CartService) AddCartItem(c context.Context, param request.AddCartItem) (int64, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Int64(log.KeyUserID, param.UserID).
		Int64(log.KeyProductID, param.ProductID).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	if param.Quantity <= 0 {
		inOtel.RecordError(inErrors.ErrInvalidQuantity, span)
		logger.Error().Err(inErrors.ErrInvalidQuantity).Msg(inErrors.ErrInvalidQuantity.Error())
		return 0, inErrors.ErrInvalidQuantity
	}

	logger = logger.With().Str(log.KeyProcess, "upserting cart item").Logger()
	logger.Info().Msg("upserting cart item")
	id, err := svc.queries.UpsertCartItem(c, repository.UpsertCartItemParams{
		UserID:    param.UserID,
		ProductID: param.ProductID,
		Quantity:  param.Quantity,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			err = fmt.Errorf(
				"failed adding productId=%d to cart with error=%w",
				param.ProductID,
				inErrors.ErrProductNotFound,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return 0, err
		}
		err = fmt.Errorf("failed upserting cart item productId=%d with error=%w", param.ProductID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}
	logger = logger.With().Int64(log.KeyCartItemID, id).Logger()
	logger.Info().Msg("upserted cart item")

	svc.invalidateCart(c, param.UserID)

	return id, nil
}

// UpdateCartItem sets (not increments) the line quantity. Non-positive
// quantities are rejected and leave the cart unchanged.
func (svc CartService) UpdateCartItem(
	c context.Context,
	id int64,
	param request.UpdateCartItem,
) error {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartItem").
		Int64(log.KeyCartItemID, id).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	if param.Quantity <= 0 {
		inOtel.RecordError(inErrors.ErrInvalidQuantity, span)
		logger.Error().Err(inErrors.ErrInvalidQuantity).Msg(inErrors.ErrInvalidQuantity.Error())
		return inErrors.ErrInvalidQuantity
	}

	logger = logger.With().Str(log.KeyProcess, "updating cart item").Logger()
	logger.Info().Msg("updating cart item")
	userID, err := svc.queries.UpdateCartItemQuantity(c, repository.UpdateCartItemQuantityParams{
		ID:       id,
		Quantity: param.Quantity,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"failed updating cartItemId=%d with error=%w",
				id,
				inErrors.ErrCartItemNotFound,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		err = fmt.Errorf("failed updating cartItemId=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("updated cart item")

	svc.invalidateCart(c, userID)

	return nil
}

// RemoveCartItem deletes the line unconditionally. Removing an absent line is
// a no-op success so client retries stay safe.
func (svc CartService) RemoveCartItem(c context.Context, id int64) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItem").
		Int64(log.KeyCartItemID, id).
		Str(log.KeyProcess, "deleting cart item").
		Logger()

	logger.Info().Msg("deleting cart item")
	userID, err := svc.queries.DeleteCartItemById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("cart item already absent")
			return nil
		}
		err = fmt.Errorf("failed deleting cartItemId=%d with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted cart item")

	svc.invalidateCart(c, userID)

	return nil
}

// invalidateCart drops the cached cart after a mutation. A failed delete only
// logs: the cache entry expires on its own and the database already holds the
// authoritative state.
func (svc CartService) invalidateCart(c context.Context, userID int64) {
	cacheKey := fmt.Sprintf(cacheKeyCartByUser, userID)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService invalidateCart").
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	if err := svc.cache.Del(c, cacheKey).Err(); err != nil {
		err = fmt.Errorf("failed deleting cart from cache with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("deleted cart from cache")
}
