package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"atrium/infras/otel"
	"atrium/infras/postgres"
	"atrium/internal/domains/reservation/model"
	gDto "atrium/shared/dto"
	gRepo "atrium/shared/repository"
	"context"
	"time"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Overlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Overlapping reports whether any reservation for the room intersects the
// half-open interval [start, end). A reservation ending exactly at start, or
// starting exactly at end, does not overlap. excludeID skips one reservation,
// so an edit never collides with itself.
func (repo *repositoryImpl) Overlapping(ctx context.Context, roomID string, start, end time.Time, excludeID string) (bool, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorLess,
			Value:    end,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldEndTime,
			Operator: gDto.FilterOperatorGreater,
			Value:    start,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return repo.Exist(ctx, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
}
