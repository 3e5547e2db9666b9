package family

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/internal/repo"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

type FamilyUseCase struct {
	familyRepo repo.FamilyRepo
	userRepo   repo.UserRepo
	transactor repo.Transactor

	logger logger.Interface
	now    func() time.Time
}

func New(
	familyRepo repo.FamilyRepo,
	userRepo repo.UserRepo,
	transactor repo.Transactor,
	l logger.Interface,
) *FamilyUseCase {
	return &FamilyUseCase{
		familyRepo: familyRepo,
		userRepo:   userRepo,
		transactor: transactor,
		logger:     l,
		now:        time.Now,
	}
}

// JoinOrCreate puts the user into the family with the given name,
// creating it if it does not exist. Lookup is case-insensitive over
// the lowercase-normalized name; the original casing is kept for
// display. The family write and the profile update commit together.
func (uc *FamilyUseCase) JoinOrCreate(ctx context.Context, userID, familyName string) (*entity.Family, error) {
	name := strings.TrimSpace(familyName)
	if name == "" {
		return nil, fmt.Errorf("FamilyUseCase - JoinOrCreate: %w", errs.ErrMissingFamilyName)
	}

	existing, err := uc.familyRepo.GetByNameLower(ctx, strings.ToLower(name))
	if err != nil && !errors.Is(err, errs.ErrRecordNotFound) {
		return nil, fmt.Errorf("FamilyUseCase - JoinOrCreate - uc.familyRepo.GetByNameLower: %w", err)
	}

	// join the existing family
	if existing != nil {
		err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := uc.familyRepo.AddMember(ctx, existing.ID, userID); err != nil {
				return fmt.Errorf("uc.familyRepo.AddMember: %w", err)
			}
			if err := uc.userRepo.SetFamily(ctx, userID, existing.ID); err != nil {
				return fmt.Errorf("uc.userRepo.SetFamily: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("FamilyUseCase - JoinOrCreate - uc.transactor.WithinTransaction: %w", err)
		}

		if !hasMember(existing.Members, userID) {
			existing.Members = append(existing.Members, userID)
		}

		return existing, nil
	}

	// create a new family with the user as first member
	family := &entity.Family{
		ID:        uuid.New(),
		Name:      name,
		NameLower: strings.ToLower(name),
		CreatedBy: userID,
		CreatedAt: uc.now().UTC(),
		Members:   []string{userID},
	}

	err = uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.familyRepo.Create(ctx, family); err != nil {
			return fmt.Errorf("uc.familyRepo.Create: %w", err)
		}
		if err := uc.userRepo.SetFamily(ctx, userID, family.ID); err != nil {
			return fmt.Errorf("uc.userRepo.SetFamily: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("FamilyUseCase - JoinOrCreate - uc.transactor.WithinTransaction: %w", err)
	}

	return family, nil
}

func hasMember(members []string, userID string) bool {
	for _, m := range members {
		if m == userID {
			return true
		}
	}

	return false
}
