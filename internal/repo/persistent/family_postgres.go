package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/postgres"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

const (
	// Table
	familiesTable = "families"

	// Columns
	familyNameColumn = "name"
	nameLowerColumn  = "name_lower"
	createdByColumn  = "created_by"
	createdAtColumn  = "created_at"
	membersColumn    = "members"
)

type FamilyRepo struct {
	*postgres.Postgres
}

func NewFamilyRepo(pg *postgres.Postgres) *FamilyRepo {
	return &FamilyRepo{pg}
}

func (r *FamilyRepo) Create(ctx context.Context, family *entity.Family) error {
	sql, args, err := r.Builder.
		Insert(familiesTable).
		Columns(
			idColumn,
			familyNameColumn,
			nameLowerColumn,
			createdByColumn,
			createdAtColumn,
			membersColumn,
		).
		Values(
			family.ID,
			family.Name,
			family.NameLower,
			family.CreatedBy,
			family.CreatedAt,
			family.Members,
		).ToSql()
	if err != nil {
		return fmt.Errorf("FamilyRepo - Create - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("FamilyRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

// GetByNameLower looks a family up by its lowercase-normalized name.
func (r *FamilyRepo) GetByNameLower(ctx context.Context, nameLower string) (*entity.Family, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			familyNameColumn,
			nameLowerColumn,
			createdByColumn,
			createdAtColumn,
			membersColumn,
		).
		From(familiesTable).
		Where(squirrel.Eq{nameLowerColumn: nameLower}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("FamilyRepo - GetByNameLower - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var family entity.Family
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&family.ID,
		&family.Name,
		&family.NameLower,
		&family.CreatedBy,
		&family.CreatedAt,
		&family.Members,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("FamilyRepo - GetByNameLower: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("FamilyRepo - GetByNameLower - executor.QueryRow: %w", err)
	}

	return &family, nil
}

// AddMember unions the user into the member set. Members are never
// removed, and adding an existing member is a no-op.
func (r *FamilyRepo) AddMember(ctx context.Context, familyID uuid.UUID, userID string) error {
	sql, args, err := r.Builder.
		Update(familiesTable).
		Set(membersColumn, squirrel.Expr("array_append("+membersColumn+", ?)", userID)).
		Where(squirrel.Eq{idColumn: familyID}).
		Where(squirrel.Expr("NOT (? = ANY("+membersColumn+"))", userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("FamilyRepo - AddMember - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("FamilyRepo - AddMember - executor.Exec: %w", err)
	}

	return nil
}
