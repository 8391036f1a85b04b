package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"talentlink/config"
	"talentlink/infras/otel"
	"talentlink/infras/s3"
	"talentlink/internal/domains/provider/model"
	"talentlink/internal/domains/provider/model/dto"
	"talentlink/internal/domains/provider/repository"
	"talentlink/shared"
	"talentlink/shared/cache"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProvider    = "provider:get"
	cacheGetAllProvider = "provider:get_all"
	cacheCountProvider  = "provider:count"
)

type Provider interface {
	Create(ctx context.Context, req dto.CreateProviderRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProvidersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ProviderResponse, error)
	Update(ctx context.Context, req dto.UpdateProviderRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest, id string) (dto.UploadAvatarResponse, error)
}

type serviceImpl struct {
	repo  repository.Provider
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Provider, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Provider {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProviderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	userFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.UserID,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, userFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if provider exists")

		return fmt.Errorf("failed to check if provider exists: %w", err)
	}

	if exists {
		return failure.Conflict("user is already registered as a provider") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create provider")

		return fmt.Errorf("failed to create provider: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProvider)
		shared.InvalidateCaches(c, s.cache, cacheCountProvider)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProvidersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProvider, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for providers")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count providers")

		return res, fmt.Errorf("failed to count providers: %w", err)
	}

	providers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get providers")

		return res, fmt.Errorf("failed to get providers: %w", err)
	}

	res.FromModels(providers, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save providers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProvider, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for provider count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count providers")

		return total, fmt.Errorf("failed to count providers: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save provider count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProviderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProvider, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for provider")

		return res, nil
	}

	provider, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider")

		return res, fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return res, failure.NotFound("provider not found") //nolint:wrapcheck
	}

	res.FromModel(provider)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save provider to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProviderRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProviderRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider existence")

		return fmt.Errorf("failed to check provider existence: %w", err)
	}

	if !exist {
		log.Error().Msg("provider not found")

		return failure.NotFound("provider not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update provider")

		return fmt.Errorf("failed to update provider: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProvider, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete provider cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProvider)
		shared.InvalidateCaches(c, s.cache, cacheCountProvider)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	provider, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider for deletion")

		return fmt.Errorf("failed to get provider: %w", err)
	}

	if provider.ID == constant.Empty {
		log.Error().Msg("provider not found")

		return failure.NotFound("provider not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete provider")

		return fmt.Errorf("failed to delete provider: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProvider, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete provider cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProvider)
		shared.InvalidateCaches(c, s.cache, cacheCountProvider)

		if provider.AvatarURL != nil {
			bucketName := s.cfg.External.S3.BucketName
			objectName := s.s3.GetObjectNameFromURL(bucketName, *provider.AvatarURL)

			if objectName != constant.Empty {
				if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
					log.Error().Err(err).Msg("failed to delete avatar from S3")
				}
			}
		}
	}()

	return nil
}

func (s *serviceImpl) UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest, id string) (res dto.UploadAvatarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAvatar")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider existence")

		return res, fmt.Errorf("failed to check provider existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("provider not found") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.AvatarFile, req.Avatar, req.Avatar.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar to S3")

		return res, fmt.Errorf("failed to upload avatar to S3: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	update := dto.UpdateProviderRequest{Avatar: &url}
	updatedFields := shared.TransformFields(update, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to persist avatar url")

		return res, fmt.Errorf("failed to persist avatar url: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProvider, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete provider cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProvider)
	}()

	res.FromModel(url, req.Avatar.Filename)

	return res, nil
}
