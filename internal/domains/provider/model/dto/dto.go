package dto

import (
	"mime/multipart"

	"talentlink/internal/domains/provider/model"
	"talentlink/shared"
	gDto "talentlink/shared/dto"
	gModel "talentlink/shared/model"
	"talentlink/shared/timezone"

	"github.com/google/uuid"
)

type CreateProviderRequest struct {
	UserID   string  `json:"user_id"       validate:"required"`
	Name     string  `json:"name"          validate:"required,max=100"`
	Title    string  `json:"title"         validate:"required,max=100"`
	Category string  `json:"category"      validate:"required,max=50"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

func (c *CreateProviderRequest) ToModel(username string) model.Provider {
	return model.Provider{
		ID:       uuid.NewString(),
		UserID:   c.UserID,
		Name:     c.Name,
		Title:    c.Title,
		Category: c.Category,
		Bio:      c.Bio,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateProviderRequest struct {
	Name     *string `db:"name"       json:"name,omitempty"     validate:"omitempty,max=100"`
	Title    *string `db:"title"      json:"title,omitempty"    validate:"omitempty,max=100"`
	Category *string `db:"category"   json:"category,omitempty" validate:"omitempty,max=50"`
	Bio      *string `db:"bio"        json:"bio,omitempty"      validate:"omitempty,max=2000"`
	Avatar   *string `db:"avatar_url" json:"-"`
}

type ProviderResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	gDto.Metadata
}

func (r *ProviderResponse) FromModel(model model.Provider) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Name = model.Name
	r.Title = model.Title
	r.Category = model.Category
	r.Bio = model.Bio
	r.AvatarURL = model.AvatarURL
	r.Rating = model.Rating
	r.ReviewCount = model.ReviewCount
	r.Metadata.FromModel(model.Metadata)
}

type GetProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetProvidersResponse) FromModels(models []model.Provider, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Providers = make([]ProviderResponse, len(models))
	for i, mod := range models {
		r.Providers[i].FromModel(mod)
	}
}

type UploadAvatarRequest struct {
	Avatar     *multipart.FileHeader `validate:"required,maxfilesize=5"`
	AvatarFile multipart.File
}

type UploadAvatarResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadAvatarResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
