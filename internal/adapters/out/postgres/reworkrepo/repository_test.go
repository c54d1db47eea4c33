package reworkrepo_test

import (
	"testing"

	"automfg/internal/adapters/out/postgres/dbtest"
	"automfg/internal/adapters/out/postgres/reworkrepo"
	"automfg/internal/core/domain/model/kernel"
	"automfg/internal/core/domain/model/rework"
	"automfg/internal/core/ports"
	"automfg/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, ports.EventSource) {}

func TestGormReworkOrderRepository_Lifecycle(t *testing.T) {
	ctx := t.Context()
	repo := reworkrepo.NewGormReworkOrderRepository(dbtest.SQLite(t), nopTracker{})
	ro, err := rework.NewReworkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]string{"Brake function", "Headlight aim"})
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, ro))

	loaded, err := repo.Get(ctx, ro.ID())
	require.NoError(t, err)
	assert.Equal(t, rework.Created, loaded.Status())
	assert.Equal(t, []string{"Brake function", "Headlight aim"}, loaded.FailedItemDescriptions())
	assert.True(t, loaded.InspectionID().IsEqual(ro.InspectionID()))
	_, done := loaded.CompletedAt()
	assert.False(t, done)

	require.NoError(t, loaded.Complete())
	require.NoError(t, repo.Update(ctx, loaded))

	got, err := repo.Get(ctx, ro.ID())
	require.NoError(t, err)
	assert.Equal(t, rework.Completed, got.Status())
	_, done = got.CompletedAt()
	assert.True(t, done)
	assert.Equal(t, 1, got.Version())
}

func TestGormReworkOrderRepository_OnePerInspection(t *testing.T) {
	ctx := t.Context()
	repo := reworkrepo.NewGormReworkOrderRepository(dbtest.SQLite(t), nopTracker{})
	inspectionID := kernel.NewUUID()

	first, err := rework.NewReworkOrder(kernel.NewUUID(), kernel.NewUUID(), inspectionID, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, first))

	second, err := rework.NewReworkOrder(kernel.NewUUID(), kernel.NewUUID(), inspectionID, nil)
	require.NoError(t, err)
	assert.Error(t, repo.Add(ctx, second))
}

func TestGormReworkOrderRepository_Errors(t *testing.T) {
	ctx := t.Context()
	repo := reworkrepo.NewGormReworkOrderRepository(dbtest.SQLite(t), nopTracker{})

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	ro, err := rework.NewReworkOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Update(ctx, ro), errs.ErrVersionIsInvalid)

	require.ErrorIs(t, repo.Add(ctx, &rework.ReworkOrder{}), rework.ErrReworkOrderIsNotConstructed)
}
