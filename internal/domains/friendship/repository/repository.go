package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"talentlink/infras/otel"
	"talentlink/infras/postgres"
	"talentlink/internal/domains/friendship/model"
	gDto "talentlink/shared/dto"
	gRepo "talentlink/shared/repository"
)

type Friendship interface {
	Insert(ctx context.Context, model model.Friendship) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Friendship, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Friendship, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Friendship]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Friendship {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Friendship](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
