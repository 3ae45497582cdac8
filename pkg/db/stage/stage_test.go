package stage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/millworks/prodtrack/dao/model"
)

func newTestService(t *testing.T) DBService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Stage{}, &model.Project{}))
	return NewDBService(db)
}

func TestCreateStageTrimsName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := &model.Stage{Name: "  Under Manufacturing  ", Remarks: "shop floor"}
	require.NoError(t, svc.Create(ctx, created))
	assert.Equal(t, "Under Manufacturing", created.Name)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Under Manufacturing", got.Name)
	assert.Equal(t, "shop floor", got.Remarks)
}

func TestCreateStageEmptyName(t *testing.T) {
	svc := newTestService(t)

	err := svc.Create(context.Background(), &model.Stage{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCreateStageKeepsCallerID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := &model.Stage{ID: "stage-1", Name: "Dispatched"}
	require.NoError(t, svc.Create(ctx, created))
	assert.Equal(t, "stage-1", created.ID)
}

func TestDuplicateStageNamesPermitted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &model.Stage{Name: "Painting"}))
	require.NoError(t, svc.Create(ctx, &model.Stage{Name: "Painting"}))

	stages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stages, 2)
}

func TestListStagesInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	names := []string{"Design", "Under Manufacturing", "Quality Check", "Dispatched"}
	for _, name := range names {
		require.NoError(t, svc.Create(ctx, &model.Stage{Name: name}))
	}

	stages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, stages, len(names))
	for i, name := range names {
		assert.Equal(t, name, stages[i].Name)
	}
}

func TestUpdateStage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := &model.Stage{Name: "Assembly", Remarks: "old"}
	require.NoError(t, svc.Create(ctx, created))

	updated, err := svc.Update(ctx, created.ID, &model.Stage{Name: "  Final Assembly ", Remarks: "new"})
	require.NoError(t, err)
	assert.Equal(t, "Final Assembly", updated.Name)
	assert.Equal(t, "new", updated.Remarks)

	_, err = svc.Update(ctx, "no-such-id", &model.Stage{Name: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = svc.Update(ctx, created.ID, &model.Stage{Name: " "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestDeleteStage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created := &model.Stage{Name: "Packing"}
	require.NoError(t, svc.Create(ctx, created))

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), gorm.ErrRecordNotFound)

	_, err := svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
