package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lautaroCastilloJ/storefront/internal/domain"
	"github.com/lautaroCastilloJ/storefront/internal/storage"
)

type mockStorage struct {
	data map[string]string
	err  error
}

func newMockStorage() *mockStorage {
	return &mockStorage{data: make(map[string]string)}
}

func (m *mockStorage) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.data[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStorage) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *mockStorage) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func (m *mockStorage) Close() error { return nil }

func laptop() domain.Product {
	return domain.Product{
		ID:               "p1",
		SKU:              "NB-100",
		Name:             "Laptop",
		CurrentUnitPrice: 10.00,
		StockQuantity:    5,
		ImageURL:         "https://img.example/p1.png",
		Status:           domain.ProductStatusActive,
	}
}

func keyboard() domain.Product {
	return domain.Product{
		ID:               "p2",
		SKU:              "KB-200",
		Name:             "Keyboard",
		CurrentUnitPrice: 89.50,
		StockQuantity:    40,
		Status:           domain.ProductStatusActive,
	}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())

	require.NoError(t, sut.AddItem(ctx, laptop(), 1))
	require.NoError(t, sut.AddItem(ctx, laptop(), 1))

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 20.00, sut.TotalAmount())
}

func TestAddItem_SnapshotsProductFields(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())

	require.NoError(t, sut.AddItem(ctx, laptop(), 3))

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.Equal(t, "NB-100", items[0].SKU)
	assert.Equal(t, 10.00, items[0].UnitPrice)
	assert.Equal(t, "https://img.example/p1.png", items[0].ImageURL)
	assert.Equal(t, 5, items[0].AvailableStock)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItem_NonPositiveQuantityCountsAsOne(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())

	require.NoError(t, sut.AddItem(ctx, laptop(), 0))

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())

	require.NoError(t, sut.AddItem(ctx, laptop(), 1))
	require.NoError(t, sut.AddItem(ctx, keyboard(), 1))
	require.NoError(t, sut.AddItem(ctx, laptop(), 1))

	items := sut.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestUpdateQuantity_SetsExactQuantity(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())
	require.NoError(t, sut.AddItem(ctx, laptop(), 2))

	require.NoError(t, sut.UpdateQuantity(ctx, "p1", 7))

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantity_NonPositiveRemovesLine(t *testing.T) {
	ctx := context.Background()
	for _, quantity := range []int{0, -3} {
		sut := NewStore(ctx, newMockStorage())
		require.NoError(t, sut.AddItem(ctx, laptop(), 2))

		require.NoError(t, sut.UpdateQuantity(ctx, "p1", quantity))

		assert.Empty(t, sut.Items())
		assert.Equal(t, 0, sut.ItemCount())
	}
}

func TestUpdateQuantity_UnknownProductIsNoOp(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())
	require.NoError(t, sut.AddItem(ctx, laptop(), 2))

	require.NoError(t, sut.UpdateQuantity(ctx, "missing", 5))

	items := sut.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())
	require.NoError(t, sut.AddItem(ctx, laptop(), 1))

	require.NoError(t, sut.RemoveItem(ctx, "missing"))

	assert.Len(t, sut.Items(), 1)
}

func TestClear_LeavesNoResidue(t *testing.T) {
	ctx := context.Background()
	st := newMockStorage()
	sut := NewStore(ctx, st)
	require.NoError(t, sut.AddItem(ctx, laptop(), 2))
	require.NoError(t, sut.AddItem(ctx, keyboard(), 1))

	require.NoError(t, sut.Clear(ctx))

	assert.Empty(t, sut.Items())
	assert.Equal(t, 0, sut.ItemCount())
	assert.Equal(t, 0.0, sut.TotalAmount())
	_, ok := st.data[storage.KeyCart]
	assert.False(t, ok, "persisted cart entry should be gone")
}

func TestRemovingLastLine_DeletesPersistedEntry(t *testing.T) {
	ctx := context.Background()
	st := newMockStorage()
	sut := NewStore(ctx, st)
	require.NoError(t, sut.AddItem(ctx, laptop(), 1))

	require.NoError(t, sut.UpdateQuantity(ctx, "p1", 0))

	_, ok := st.data[storage.KeyCart]
	assert.False(t, ok)
}

func TestTotals_RecomputedFromState(t *testing.T) {
	ctx := context.Background()
	sut := NewStore(ctx, newMockStorage())

	require.NoError(t, sut.AddItem(ctx, laptop(), 1))
	require.NoError(t, sut.AddItem(ctx, laptop(), 1))
	assert.Equal(t, 20.00, sut.TotalAmount())
	assert.Equal(t, 2, sut.ItemCount())

	require.NoError(t, sut.AddItem(ctx, keyboard(), 2))
	assert.Equal(t, 20.00+2*89.50, sut.TotalAmount())
	assert.Equal(t, 4, sut.ItemCount())

	require.NoError(t, sut.UpdateQuantity(ctx, "p1", 0))
	assert.Equal(t, 2*89.50, sut.TotalAmount())
	assert.Equal(t, 2, sut.ItemCount())
}

func TestNewStore_RestoresPersistedCart(t *testing.T) {
	ctx := context.Background()
	st := newMockStorage()

	first := NewStore(ctx, st)
	require.NoError(t, first.AddItem(ctx, laptop(), 2))
	require.NoError(t, first.AddItem(ctx, keyboard(), 1))

	second := NewStore(ctx, st)
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, first.TotalAmount(), second.TotalAmount())
	assert.Equal(t, first.ItemCount(), second.ItemCount())
}

func TestNewStore_CorruptPayloadResetsEmpty(t *testing.T) {
	ctx := context.Background()
	st := newMockStorage()
	st.data[storage.KeyCart] = "{not json"

	sut := NewStore(ctx, st)

	assert.Empty(t, sut.Items())
	_, ok := st.data[storage.KeyCart]
	assert.False(t, ok, "corrupt entry should be discarded")
}

func TestMutators_WriteThroughBeforeReturning(t *testing.T) {
	ctx := context.Background()
	st := newMockStorage()
	sut := NewStore(ctx, st)

	require.NoError(t, sut.AddItem(ctx, laptop(), 1))
	raw, ok := st.data[storage.KeyCart]
	require.True(t, ok)
	assert.Contains(t, raw, `"product_id":"p1"`)
}
