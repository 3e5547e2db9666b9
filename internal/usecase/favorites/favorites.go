package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/repo"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

// FavoritesUseCase toggles photos in and out of a user's favorites
// set. Local state is mutated optimistically before the remote update
// and rolled back if the update fails; a per-photo pending flag keeps
// two toggles on the same id from interleaving.
type FavoritesUseCase struct {
	userRepo repo.UserRepo
	logger   logger.Interface

	mu      sync.Mutex
	sets    map[string]map[uuid.UUID]struct{}
	pending map[pendingKey]struct{}
}

type pendingKey struct {
	userID  string
	photoID uuid.UUID
}

func New(userRepo repo.UserRepo, l logger.Interface) *FavoritesUseCase {
	return &FavoritesUseCase{
		userRepo: userRepo,
		logger:   l,
		sets:     make(map[string]map[uuid.UUID]struct{}),
		pending:  make(map[pendingKey]struct{}),
	}
}

// Favorites returns the user's favorites set, including optimistic
// in-flight mutations. Loaded from the store on first use.
func (uc *FavoritesUseCase) Favorites(ctx context.Context, userID string) (map[uuid.UUID]struct{}, error) {
	set, err := uc.load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("FavoritesUseCase - Favorites - uc.load: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// copy so callers never observe later mutations
	out := make(map[uuid.UUID]struct{}, len(set))
	for id := range set {
		out[id] = struct{}{}
	}

	return out, nil
}

// Toggle flips membership of photoID in the user's favorites set and
// reports the new state. Toggles on different ids are independent; a
// second toggle on the same id while the first is in flight fails with
// ErrToggleInFlight.
func (uc *FavoritesUseCase) Toggle(ctx context.Context, userID string, photoID uuid.UUID) (bool, error) {
	set, err := uc.load(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("FavoritesUseCase - Toggle - uc.load: %w", err)
	}

	key := pendingKey{userID: userID, photoID: photoID}

	// idle -> pending, with optimistic local mutation
	uc.mu.Lock()
	if _, inFlight := uc.pending[key]; inFlight {
		uc.mu.Unlock()
		return false, fmt.Errorf("FavoritesUseCase - Toggle: %w", errs.ErrToggleInFlight)
	}
	uc.pending[key] = struct{}{}

	_, was := set[photoID]
	if was {
		delete(set, photoID)
	} else {
		set[photoID] = struct{}{}
	}
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		delete(uc.pending, key)
		uc.mu.Unlock()
	}()

	// pending -> settled | rolled-back
	if was {
		err = uc.userRepo.RemoveFavorite(ctx, userID, photoID)
	} else {
		err = uc.userRepo.AddFavorite(ctx, userID, photoID)
	}
	if err != nil {
		uc.mu.Lock()
		if was {
			set[photoID] = struct{}{}
		} else {
			delete(set, photoID)
		}
		uc.mu.Unlock()

		return was, fmt.Errorf("FavoritesUseCase - Toggle - uc.userRepo: %w", err)
	}

	return !was, nil
}

func (uc *FavoritesUseCase) load(ctx context.Context, userID string) (map[uuid.UUID]struct{}, error) {
	uc.mu.Lock()
	if set, ok := uc.sets[userID]; ok {
		uc.mu.Unlock()
		return set, nil
	}
	uc.mu.Unlock()

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("uc.userRepo.GetByID: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// another request may have loaded it meanwhile
	if set, ok := uc.sets[userID]; ok {
		return set, nil
	}

	set := make(map[uuid.UUID]struct{}, len(user.Favorites))
	for _, id := range user.Favorites {
		set[id] = struct{}{}
	}
	uc.sets[userID] = set

	return set, nil
}
