package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medignis/docflow/gen/ent"
	"github.com/medignis/docflow/gen/ent/documentclass"
	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/entity"
)

type DocumentClassRepository interface {
	Create(ctx context.Context, name, description string) (*entity.DocumentClass, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentClass, error)
	GetByName(ctx context.Context, name string) (*entity.DocumentClass, error)
	List(ctx context.Context) ([]entity.DocumentClass, error)
}

type documentClassRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentClassRepository(entc *ent.Client, log *slog.Logger) DocumentClassRepository {
	return &documentClassRepo{ent: entc, log: log}
}

func (r *documentClassRepo) Create(ctx context.Context, name, description string) (*entity.DocumentClass, error) {
	row, err := r.ent.DocumentClass.
		Create().
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		r.log.Error("document_class create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("document_class created", "class_id", row.ID, "name", name)
	return toDocumentClass(row), nil
}

func (r *documentClassRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DocumentClass, error) {
	row, err := r.ent.DocumentClass.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocumentClass(row), nil
}

func (r *documentClassRepo) GetByName(ctx context.Context, name string) (*entity.DocumentClass, error) {
	row, err := r.ent.DocumentClass.
		Query().
		Where(documentclass.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocumentClass(row), nil
}

func (r *documentClassRepo) List(ctx context.Context) ([]entity.DocumentClass, error) {
	rows, err := r.ent.DocumentClass.
		Query().
		Order(ent.Asc(documentclass.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.DocumentClass, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDocumentClass(row))
	}
	return out, nil
}

func toDocumentClass(row *ent.DocumentClass) *entity.DocumentClass {
	return &entity.DocumentClass{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
