// Package cart implements the client-side shopping cart: an ordered list of
// line items resolved against an injected product catalog, persisted to a
// durable store after every mutation. The manager owns its state; rendering
// is decoupled behind subscriber notifications.
package cart

import (
	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/domain"
)

// LineItem is one product-and-quantity entry. Name, price and image are
// snapshots taken from the catalog at add time. The JSON keys match the
// stored cart format.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

type EventKind string

const (
	EventItemAdded       EventKind = "item_added"
	EventQuantityChanged EventKind = "quantity_changed"
	EventCartCleared     EventKind = "cart_cleared"
	EventCartRestored    EventKind = "cart_restored"
)

// Event is pushed to subscribers after every state change so a view layer
// can re-render without the manager knowing about it.
type Event struct {
	Kind      EventKind
	ProductID string
	ItemCount int
}

// Manager owns the cart. It is not safe for concurrent use; mutations are
// driven by one user action at a time.
type Manager struct {
	catalog *Catalog
	store   Store
	items   []LineItem
	subs    []func(Event)
}

func NewManager(catalog *Catalog, store Store) *Manager {
	return &Manager{
		catalog: catalog,
		store:   store,
	}
}

// Subscribe registers a notification callback. Callbacks run synchronously
// after each mutation, in registration order.
func (m *Manager) Subscribe(fn func(Event)) {
	m.subs = append(m.subs, fn)
}

// Add puts one unit of the product in the cart, merging with an existing
// line item for the same product. Unknown identifiers are silently ignored.
func (m *Manager) Add(productID string) {
	product, ok := m.catalog.Lookup(productID)
	if !ok {
		return
	}

	merged := false
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, LineItem{
			ProductID: productID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}

	m.persist()
	m.notify(Event{Kind: EventItemAdded, ProductID: productID, ItemCount: m.ItemCount()})
}

// ChangeQuantity adjusts an existing line item by delta. A resulting
// quantity of zero or below removes the item entirely. No-op when the
// product is not in the cart.
func (m *Manager) ChangeQuantity(productID string, delta int) {
	for i := range m.items {
		if m.items[i].ProductID != productID {
			continue
		}

		m.items[i].Quantity += delta
		if m.items[i].Quantity <= 0 {
			m.items = append(m.items[:i], m.items[i+1:]...)
		}

		m.persist()
		m.notify(Event{Kind: EventQuantityChanged, ProductID: productID, ItemCount: m.ItemCount()})
		return
	}
}

// Total sums price × quantity over all line items. A line item without a
// recorded price falls back to the live catalog price, so carts persisted
// before prices were stored still total correctly.
func (m *Manager) Total() float64 {
	total := 0.0
	for _, it := range m.items {
		price := it.Price
		if price == 0 {
			if product, ok := m.catalog.Lookup(it.ProductID); ok {
				price = product.Price
			}
		}
		total += price * float64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of all quantities, shown on the cart badge.
func (m *Manager) ItemCount() int {
	count := 0
	for _, it := range m.items {
		count += it.Quantity
	}
	return count
}

// Items returns a copy of the current line items in insertion order.
func (m *Manager) Items() []LineItem {
	return append([]LineItem(nil), m.items...)
}

// Persist writes the cart to the durable store.
func (m *Manager) Persist() error {
	return m.store.Save(m.items)
}

// Restore loads the persisted cart. Absent or corrupt data degrades to an
// empty cart; a restore can never fail the caller.
func (m *Manager) Restore() {
	items, err := m.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("stored cart unreadable, starting empty")
		m.items = nil
		return
	}

	// Drop any non-positive entries a foreign writer may have left behind.
	restored := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			restored = append(restored, it)
		}
	}
	m.items = restored
	m.notify(Event{Kind: EventCartRestored, ItemCount: m.ItemCount()})
}

// Clear empties the cart, called after a confirmed order placement.
func (m *Manager) Clear() {
	m.items = nil
	m.persist()
	m.notify(Event{Kind: EventCartCleared, ItemCount: 0})
}

// ToOrderSubmission snapshots the cart into an order submission for the
// given customer. The snapshot is decoupled from the cart: later mutations
// cannot affect it. The cart itself is not modified.
func (m *Manager) ToOrderSubmission(customer domain.Customer, payment domain.PaymentMethod) *domain.Order {
	if payment == "" {
		payment = domain.PaymentCashOnDelivery
	}

	items := make([]domain.OrderItem, 0, len(m.items))
	for _, it := range m.items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		})
	}

	return &domain.Order{
		Customer:      customer,
		Items:         items,
		TotalAmount:   m.Total(),
		PaymentMethod: payment,
	}
}

func (m *Manager) persist() {
	if err := m.store.Save(m.items); err != nil {
		log.Warn().Err(err).Msg("failed to persist cart")
	}
}

func (m *Manager) notify(e Event) {
	for _, fn := range m.subs {
		fn(e)
	}
}
