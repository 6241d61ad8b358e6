package spaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
)

type spaceRepoStub struct {
	space       *domain.Space
	getErr      error
	updateErr   error
	lastState   domain.SpaceState
	updateCalls int
	getCalls    int
}

func (s *spaceRepoStub) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	space.ID = 1
	return space, nil
}

func (s *spaceRepoStub) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.space, nil
}

func (s *spaceRepoStub) List(_ context.Context, _ domain.SpacesFilter) ([]*domain.Space, error) {
	return []*domain.Space{s.space}, nil
}

func (s *spaceRepoStub) Update(_ context.Context, id int64, space *domain.Space) (*domain.Space, error) {
	space.ID = id
	return space, nil
}

func (s *spaceRepoStub) UpdateState(_ context.Context, _ int64, state domain.SpaceState) error {
	s.updateCalls++
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastState = state
	return nil
}

func (s *spaceRepoStub) Delete(_ context.Context, _ int64) error {
	return nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func freeSpace() *domain.Space {
	return &domain.Space{
		ID:         5,
		FacilityID: 1,
		Code:       "A1",
		Type:       domain.SpaceTypeCar,
		State:      domain.SpaceStateFree,
	}
}

func TestSpaces_ActionsMapToStates(t *testing.T) {
	repo := &spaceRepoStub{space: freeSpace()}
	svc := NewService(repo, false, &nopLogger{})

	resp, err := svc.Occupy(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "occupied", resp.State)

	resp, err = svc.Release(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "free", resp.State)

	resp, err = svc.Reserve(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "reserved", resp.State)

	resp, err = svc.MarkOutOfService(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "out_of_service", resp.State)
}

func TestSpaces_TransitionsAreUnconditional(t *testing.T) {
	occupied := freeSpace()
	occupied.State = domain.SpaceStateOccupied

	repo := &spaceRepoStub{space: occupied}
	svc := NewService(repo, false, &nopLogger{})

	// Из occupied можно перейти в reserved без промежуточного free
	resp, err := svc.Reserve(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "reserved", resp.State)
	// Текущее состояние не читается в нестрогом режиме
	assert.Zero(t, repo.getCalls)
}

func TestSpaces_SetStateRejectsUnknownState(t *testing.T) {
	repo := &spaceRepoStub{space: freeSpace()}
	svc := NewService(repo, false, &nopLogger{})

	_, err := svc.SetState(context.Background(), 5, "parked")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "free")
	assert.Contains(t, err.Error(), "out_of_service")
	assert.Zero(t, repo.updateCalls)
}

func TestSpaces_SetStateNotFound(t *testing.T) {
	repo := &spaceRepoStub{updateErr: spaceRepo.ErrSpaceNotFound}
	svc := NewService(repo, false, &nopLogger{})

	_, err := svc.SetState(context.Background(), 999, "occupied")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestSpaces_StrictModeRejectsRedundantTransition(t *testing.T) {
	occupied := freeSpace()
	occupied.State = domain.SpaceStateOccupied

	repo := &spaceRepoStub{space: occupied}
	svc := NewService(repo, true, &nopLogger{})

	_, err := svc.Occupy(context.Background(), 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRedundantTransition)
	assert.Zero(t, repo.updateCalls)
}

func TestSpaces_StrictModeAllowsRealTransition(t *testing.T) {
	repo := &spaceRepoStub{space: freeSpace()}
	svc := NewService(repo, true, &nopLogger{})

	resp, err := svc.Occupy(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "occupied", resp.State)
	assert.Equal(t, 1, repo.updateCalls)
}
