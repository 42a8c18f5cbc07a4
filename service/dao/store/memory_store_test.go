package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/licensor/service/dao"
)

type entry struct {
	ID    string
	Value string
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	aStore := NewMemoryStore[string, entry](func(e *entry) string { return e.ID },
		WithClone[string, entry](func(e *entry) *entry { c := *e; return &c }),
		WithFilter[string, entry](func(e *entry, parameters []*dao.Parameter) bool {
			for _, p := range parameters {
				if p.Name == "Value" && p.Value != e.Value {
					return false
				}
			}
			return true
		}))

	assert.ErrorIs(t, aStore.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, aStore.Save(ctx, &entry{}), dao.ErrInvalidID)

	require.NoError(t, aStore.Save(ctx, &entry{ID: "b", Value: "1"}))
	require.NoError(t, aStore.Save(ctx, &entry{ID: "a", Value: "2"}))

	loaded, err := aStore.Load(ctx, "b")
	require.NoError(t, err)
	loaded.Value = "changed"
	again, _ := aStore.Load(ctx, "b")
	assert.Equal(t, "1", again.Value)

	all, err := aStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)

	filtered, err := aStore.List(ctx, dao.NewParameter("Value", "2"))
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)

	require.NoError(t, aStore.Delete(ctx, "b"))
	assert.ErrorIs(t, aStore.Delete(ctx, "b"), dao.ErrNotFound)
	_, err = aStore.Load(ctx, "b")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
