package provider

import (
	"net/http"

	"talentlink/infras/otel"
	"talentlink/internal/domains/provider/model"
	"talentlink/internal/domains/provider/model/dto"
	"talentlink/internal/domains/provider/service"
	"talentlink/shared/constant"
	gDto "talentlink/shared/dto"
	"talentlink/shared/validator"
	"talentlink/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Provider
	otel    otel.Otel
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/providers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProvider)
		routerGroup.Get("/", handler.GetProviders)
		routerGroup.Get("/{id}", handler.GetProviderByID)
		routerGroup.Patch("/{id}", handler.UpdateProvider)
		routerGroup.Delete("/{id}", handler.DeleteProvider)
		routerGroup.Post("/{id}/avatar", handler.UploadAvatar)
	})
}

// CreateProvider handles the creation of a new provider profile.
// @Summary Create a new provider
// @Description Register the given user as a provider with the provided profile details.
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateProviderRequest true "Create Provider Request"
// @Success 201 {object} response.Message "Provider created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers [post]
// @Security BearerAuth
func (handler *Handler) CreateProvider(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProvider")
	defer scope.End()

	req := dto.CreateProviderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create provider")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Provider created successfully")

	response.WithMessage(writer, http.StatusCreated, "Provider created successfully")
}

// GetProviders retrieves all providers based on query parameters.
// @Summary Get all providers
// @Description Retrieve all providers with optional filtering and pagination.
// @Tags Provider
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param name query string false "Filter by name (partial match)"
// @Success 200 {object} response.Data[dto.GetProvidersResponse] "List of providers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers [get]
func (handler *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)
	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	providers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get providers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Providers retrieved successfully")

	response.WithJSON(w, http.StatusOK, providers)
}

// GetProviderByID retrieves a provider by its ID.
// @Summary Get a provider by ID
// @Description Retrieve a provider by its unique identifier.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Data[dto.ProviderResponse] "Provider details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [get]
func (handler *Handler) GetProviderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	provider, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider retrieved successfully")

	response.WithJSON(w, http.StatusOK, provider)
}

// UpdateProvider updates an existing provider by its ID.
// @Summary Update a provider by ID
// @Description Update the profile of an existing provider.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body dto.UpdateProviderRequest true "Update Provider Request"
// @Success 200 {object} response.Message "Provider updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProvider")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProviderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update provider")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider updated successfully")

	response.WithMessage(w, http.StatusOK, "Provider updated successfully")
}

// DeleteProvider deletes a provider by its ID.
// @Summary Delete a provider by ID
// @Description Delete a provider profile using its unique identifier.
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Message "Provider deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProvider")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete provider")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Provider deleted successfully")

	response.WithMessage(w, http.StatusOK, "Provider deleted successfully")
}

// UploadAvatar handles avatar upload for a provider.
// @Summary Upload a provider avatar
// @Description Upload an avatar image to S3 and attach it to the provider.
// @Tags Provider
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Provider ID"
// @Param file formData file true "Avatar image to upload"
// @Success 200 {object} response.Data[dto.UploadAvatarResponse] "Avatar uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id}/avatar [post]
// @Security BearerAuth
func (handler *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAvatar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadAvatarRequest{
		Avatar:     fileHeader,
		AvatarFile: file,
	}

	res, err := handler.service.UploadAvatar(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload avatar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Avatar uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
