package service

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/otel"
	providerModel "talentlink/internal/domains/provider/model"
	providerRepo "talentlink/internal/domains/provider/repository"
	"talentlink/internal/domains/wishlist/model"
	"talentlink/internal/domains/wishlist/model/dto"
	"talentlink/internal/domains/wishlist/repository"
	"talentlink/shared"
	"talentlink/shared/cache"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetWishlist = "wishlist:get_mine"

type Wishlist interface {
	Add(ctx context.Context, req dto.AddWishlistRequest, userID string) error
	Remove(ctx context.Context, providerID, userID string) error
	GetMine(ctx context.Context, userID string) (dto.GetWishlistResponse, error)
}

type serviceImpl struct {
	repo         repository.Wishlist
	providerRepo providerRepo.Provider
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Wishlist, providerRepo providerRepo.Provider, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Wishlist {
	return &serviceImpl{
		repo:         repo,
		providerRepo: providerRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Add puts a provider on the user's wishlist. Adding a provider that is
// already on the list is a no-op.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddWishlistRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.providerRepo.Exist(ctx, shared.FilterByID(req.ProviderID, providerModel.FieldID, providerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider existence")

		return fmt.Errorf("failed to check provider existence: %w", err)
	}

	if !exists {
		return failure.NotFound("provider not found") //nolint:wrapcheck
	}

	listed, err := s.repo.Exist(ctx, pairFilter(userID, req.ProviderID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check wishlist")

		return fmt.Errorf("failed to check wishlist: %w", err)
	}

	if listed {
		return nil
	}

	if err = s.repo.Insert(ctx, req.ToModel(userID, userID)); err != nil {
		log.Error().Err(err).Msg("failed to add to wishlist")

		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetWishlist)
	}()

	return nil
}

// Remove takes a provider off the user's wishlist. Removing a provider that
// is not on the list is a no-op.
func (s *serviceImpl) Remove(ctx context.Context, providerID, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := pairFilter(userID, providerID)

	listed, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check wishlist")

		return fmt.Errorf("failed to check wishlist: %w", err)
	}

	if !listed {
		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to remove from wishlist")

		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetWishlist)
	}()

	return nil
}

func (s *serviceImpl) GetMine(ctx context.Context, userID string) (res dto.GetWishlistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetWishlist, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for wishlist")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}

	items, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist")

		return res, fmt.Errorf("failed to get wishlist: %w", err)
	}

	providers, err := s.getProviders(ctx, items)
	if err != nil {
		return res, err
	}

	res.FromModels(items, providers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save wishlist to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getProviders(ctx context.Context, items []model.Wishlist) ([]providerModel.Provider, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProviderID
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    providerModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    providerModel.TableName,
			},
		},
	}

	providers, err := s.providerRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist providers")

		return nil, fmt.Errorf("failed to get wishlist providers: %w", err)
	}

	return providers, nil
}

func pairFilter(userID, providerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldProviderID,
				Operator: gDto.FilterOperatorEq,
				Value:    providerID,
				Table:    model.TableName,
			},
		},
	}
}
