package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/herbalgarden/storefront/internal/domain"
)

func testCatalog() *Catalog {
	return NewCatalog([]domain.Product{
		{
			ID:        primitive.NewObjectID(),
			CatalogID: 1,
			Name:      "Tulsi",
			Price:     13.43,
			Image:     "/images/tulsi.jpg",
			Category:  domain.CategoryMedicinal,
		},
		{
			ID:        primitive.NewObjectID(),
			CatalogID: 2,
			Name:      "Neem",
			Price:     9.00,
			Image:     "/images/neem.jpg",
			Category:  domain.CategoryMedicinal,
		},
	})
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(testCatalog(), NewMemoryStore())
}

func TestAdd_MergesSameProduct(t *testing.T) {
	m := newTestManager(t)

	m.Add("1")
	m.Add("1")

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Tulsi", items[0].Name)
	assert.Equal(t, 13.43, items[0].Price)
}

func TestAdd_UnknownProductIgnored(t *testing.T) {
	m := newTestManager(t)

	m.Add("999")

	assert.Empty(t, m.Items())
	assert.Equal(t, 0, m.ItemCount())
}

func TestAdd_SnapshotsProductFields(t *testing.T) {
	m := newTestManager(t)

	m.Add("2")

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Neem", items[0].Name)
	assert.Equal(t, 9.00, items[0].Price)
	assert.Equal(t, "/images/neem.jpg", items[0].Image)
}

func TestAdd_ResolvesStorageIdentifier(t *testing.T) {
	catalog := testCatalog()
	m := NewManager(catalog, NewMemoryStore())

	hexID := catalog.Products()[0].ID.Hex()
	m.Add(hexID)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Tulsi", items[0].Name)
}

func TestChangeQuantity_RemovesAtZero(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")

	m.ChangeQuantity("1", -1)

	assert.Empty(t, m.Items())
}

func TestChangeQuantity_RemovesBelowZero(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")

	m.ChangeQuantity("1", -5)

	assert.Empty(t, m.Items())
	for _, it := range m.Items() {
		assert.Greater(t, it.Quantity, 0)
	}
}

func TestChangeQuantity_ArbitraryDelta(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")

	m.ChangeQuantity("1", +4)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestChangeQuantity_NoLineItemIsNoop(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")

	m.ChangeQuantity("2", +1)

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ProductID)
}

func TestTotal(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")
	m.Add("1")
	m.Add("2")

	assert.InDelta(t, 35.86, m.Total(), 0.001)
	assert.Equal(t, 3, m.ItemCount())
}

func TestTotal_FallsBackToCatalogPrice(t *testing.T) {
	store := NewMemoryStore()
	// A cart persisted before prices were recorded on line items.
	require.NoError(t, store.Save([]LineItem{
		{ProductID: "1", Name: "Tulsi", Quantity: 2},
	}))

	m := NewManager(testCatalog(), store)
	m.Restore()

	assert.InDelta(t, 26.86, m.Total(), 0.001)
}

func TestPersistRestore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	m := NewManager(testCatalog(), store)
	m.Add("1")
	m.Add("1")
	m.Add("2")
	require.NoError(t, m.Persist())

	// A fresh manager simulates a process restart.
	restored := NewManager(testCatalog(), store)
	restored.Restore()

	assert.Equal(t, m.Items(), restored.Items())
	assert.InDelta(t, m.Total(), restored.Total(), 0.001)
}

func TestRestore_NoStoredData(t *testing.T) {
	m := NewManager(testCatalog(), NewFileStore(t.TempDir()))

	m.Restore()

	assert.Empty(t, m.Items())
}

func TestRestore_CorruptDataDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, writeGarbage(store.path))

	m := NewManager(testCatalog(), store)
	m.Restore()

	assert.Empty(t, m.Items())
}

func TestClear(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(testCatalog(), store)
	m.Add("1")

	m.Clear()

	assert.Empty(t, m.Items())
	saved, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestToOrderSubmission_SnapshotIsDecoupled(t *testing.T) {
	m := newTestManager(t)
	m.Add("1")
	m.Add("1")

	customer := domain.Customer{Name: "A", Email: "a@b.com", Address: "X"}
	submission := m.ToOrderSubmission(customer, "")

	require.Len(t, submission.Items, 1)
	assert.Equal(t, 2, submission.Items[0].Quantity)
	assert.InDelta(t, 26.86, submission.TotalAmount, 0.001)
	assert.Equal(t, domain.PaymentCashOnDelivery, submission.PaymentMethod)

	// Mutating the cart afterwards must not change the submission.
	m.Add("2")
	m.ChangeQuantity("1", -1)
	assert.Len(t, submission.Items, 1)
	assert.Equal(t, 2, submission.Items[0].Quantity)

	// The build itself did not mutate the cart beyond those explicit calls.
	assert.Equal(t, 2, m.ItemCount())
}

func TestSubscribe_NotifiedOnMutations(t *testing.T) {
	m := newTestManager(t)

	var events []Event
	m.Subscribe(func(e Event) { events = append(events, e) })

	m.Add("1")
	m.ChangeQuantity("1", +1)
	m.Clear()

	require.Len(t, events, 3)
	assert.Equal(t, EventItemAdded, events[0].Kind)
	assert.Equal(t, 1, events[0].ItemCount)
	assert.Equal(t, EventQuantityChanged, events[1].Kind)
	assert.Equal(t, 2, events[1].ItemCount)
	assert.Equal(t, EventCartCleared, events[2].Kind)
	assert.Equal(t, 0, events[2].ItemCount)
}
