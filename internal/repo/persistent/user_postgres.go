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
	usersTable = "users"

	// Columns
	userIDColumn      = "id"
	emailColumn       = "email"
	displayNameColumn = "display_name"
	userFamilyColumn  = "family_id"
	favoritesColumn   = "favorites"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	sql, args, err := r.Builder.
		Select(
			userIDColumn,
			emailColumn,
			displayNameColumn,
			userFamilyColumn,
			favoritesColumn,
		).
		From(usersTable).
		Where(squirrel.Eq{userIDColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var user entity.UserProfile
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.FamilyID,
		&user.Favorites,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UserRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("UserRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &user, nil
}

func (r *UserRepo) SetFamily(ctx context.Context, userID string, familyID uuid.UUID) error {
	sql, args, err := r.Builder.
		Update(usersTable).
		Set(userFamilyColumn, familyID).
		Where(squirrel.Eq{userIDColumn: userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepo - SetFamily - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UserRepo - SetFamily - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UserRepo - SetFamily: %w", errs.ErrRecordNotFound)
	}

	return nil
}

// AddFavorite appends the photo id to the user's favorites set.
// Adding an id that is already present is a no-op.
func (r *UserRepo) AddFavorite(ctx context.Context, userID string, photoID uuid.UUID) error {
	sql, args, err := r.addFavoriteSQL(userID, photoID)
	if err != nil {
		return fmt.Errorf("UserRepo - AddFavorite - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UserRepo - AddFavorite - executor.Exec: %w", err)
	}

	return nil
}

// addFavoriteSQL coalesces a NULL favorites column to an empty array:
// `x = ANY(NULL)` is NULL, not false, so without the coalesce the guard
// would filter the row out and the append would silently never run.
func (r *UserRepo) addFavoriteSQL(userID string, photoID uuid.UUID) (string, []interface{}, error) {
	return r.Builder.
		Update(usersTable).
		Set(favoritesColumn, squirrel.Expr("array_append(COALESCE("+favoritesColumn+", '{}'), ?)", photoID)).
		Where(squirrel.Eq{userIDColumn: userID}).
		Where(squirrel.Expr("NOT (? = ANY(COALESCE("+favoritesColumn+", '{}')))", photoID)).
		ToSql()
}

// RemoveFavorite removes the photo id from the user's favorites set.
// Removing an absent id is a no-op.
func (r *UserRepo) RemoveFavorite(ctx context.Context, userID string, photoID uuid.UUID) error {
	sql, args, err := r.Builder.
		Update(usersTable).
		Set(favoritesColumn, squirrel.Expr("array_remove("+favoritesColumn+", ?)", photoID)).
		Where(squirrel.Eq{userIDColumn: userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepo - RemoveFavorite - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UserRepo - RemoveFavorite - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UserRepo - RemoveFavorite: %w", errs.ErrRecordNotFound)
	}

	return nil
}
