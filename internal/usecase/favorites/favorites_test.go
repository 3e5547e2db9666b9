package favorites

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

type userRepoStub struct {
	mu   sync.Mutex
	user *entity.UserProfile

	addErr    error
	removeErr error

	// AddFavorite on blockOn closes entered and parks until release
	blockOn  uuid.UUID
	entered  chan struct{}
	release  chan struct{}
	blockOne sync.Once

	addCalls    int
	removeCalls int
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*entity.UserProfile, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errs.ErrRecordNotFound
	}

	u := *s.user

	return &u, nil
}

func (s *userRepoStub) SetFamily(_ context.Context, _ string, _ uuid.UUID) error { return nil }

func (s *userRepoStub) AddFavorite(_ context.Context, _ string, photoID uuid.UUID) error {
	if s.release != nil && photoID == s.blockOn {
		s.blockOne.Do(func() { close(s.entered) })
		<-s.release
	}

	s.mu.Lock()
	s.addCalls++
	s.mu.Unlock()

	return s.addErr
}

func (s *userRepoStub) RemoveFavorite(_ context.Context, _ string, _ uuid.UUID) error {
	s.mu.Lock()
	s.removeCalls++
	s.mu.Unlock()

	return s.removeErr
}

func TestToggleAddThenRemove(t *testing.T) {
	repo := &userRepoStub{user: &entity.UserProfile{ID: "user-1"}}
	uc := New(repo, logger.New("error"))

	photoID := uuid.New()

	on, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, 1, repo.addCalls)

	set, err := uc.Favorites(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Contains(t, set, photoID)

	off, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, 1, repo.removeCalls)

	set, err = uc.Favorites(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotContains(t, set, photoID)
}

func TestToggleSeedsFromProfile(t *testing.T) {
	photoID := uuid.New()
	repo := &userRepoStub{user: &entity.UserProfile{
		ID:        "user-1",
		Favorites: []uuid.UUID{photoID},
	}}
	uc := New(repo, logger.New("error"))

	// already favorited in the store, so the first toggle removes
	on, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, 1, repo.removeCalls)
	assert.Zero(t, repo.addCalls)
}

func TestToggleRollsBackOnFailure(t *testing.T) {
	repo := &userRepoStub{
		user:   &entity.UserProfile{ID: "user-1"},
		addErr: errors.New("write conflict"),
	}
	uc := New(repo, logger.New("error"))

	photoID := uuid.New()

	on, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.Error(t, err)
	assert.False(t, on)

	// the optimistic add was undone
	set, err := uc.Favorites(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotContains(t, set, photoID)

	// a later toggle starts clean
	repo.addErr = nil
	on, err = uc.Toggle(context.Background(), "user-1", photoID)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestToggleRejectsConcurrentToggleOnSamePhoto(t *testing.T) {
	photoID := uuid.New()

	repo := &userRepoStub{
		user:    &entity.UserProfile{ID: "user-1"},
		blockOn: photoID,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	uc := New(repo, logger.New("error"))

	done := make(chan struct{})

	go func() {
		defer close(done)

		on, err := uc.Toggle(context.Background(), "user-1", photoID)
		assert.NoError(t, err)
		assert.True(t, on)
	}()

	// the first toggle holds the pending flag once the repo call starts
	<-repo.entered

	_, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.ErrorIs(t, err, errs.ErrToggleInFlight)

	// a toggle on a different photo is unaffected
	other := uuid.New()
	on, err := uc.Toggle(context.Background(), "user-1", other)
	require.NoError(t, err)
	assert.True(t, on)

	close(repo.release)
	<-done
}

func TestFavoritesReturnsACopy(t *testing.T) {
	repo := &userRepoStub{user: &entity.UserProfile{ID: "user-1"}}
	uc := New(repo, logger.New("error"))

	photoID := uuid.New()

	_, err := uc.Toggle(context.Background(), "user-1", photoID)
	require.NoError(t, err)

	set, err := uc.Favorites(context.Background(), "user-1")
	require.NoError(t, err)

	delete(set, photoID)

	again, err := uc.Favorites(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Contains(t, again, photoID)
}
