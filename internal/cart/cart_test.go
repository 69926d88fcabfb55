package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quickcart/internal/model"
)

var rice = model.Product{ID: "G001", Name: "Basmati Rice", Category: "Groceries", Price: 450, Unit: "5 kg"}
var milk = model.Product{ID: "D001", Name: "Fresh Milk", Category: "Dairy", Price: 64, Unit: "1 L"}

func TestAddItem_MergesByProductID(t *testing.T) {
	s := New()

	for i := 0; i < 5; i++ {
		s.AddItem(rice)
	}

	items := s.Items()
	require.Len(t, items, 1, "exactly one line per product id")
	assert.Equal(t, "G001", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_SnapshotsProduct(t *testing.T) {
	s := New()
	p := rice
	s.AddItem(p)

	// Catalog-side edits after add must not reach the cart.
	p.Price = 9999
	p.Name = "Renamed"

	got := s.Items()[0]
	assert.Equal(t, 450.0, got.Price)
	assert.Equal(t, "Basmati Rice", got.Name)
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"increment", 1, 1, 2},
		{"decrement", 3, -1, 2},
		{"clamp at one", 2, -5, 1},
		{"decrement to zero clamps", 1, -1, 1},
		{"big increment", 1, 10, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.AddItem(rice)
			s.UpdateQuantity("G001", tt.start-1)
			s.UpdateQuantity("G001", tt.delta)
			assert.Equal(t, tt.want, s.Items()[0].Quantity)
		})
	}
}

func TestUpdateQuantity_UnknownIDNoOp(t *testing.T) {
	s := New()
	s.AddItem(rice)
	s.UpdateQuantity("missing", 3)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s := New()
	s.AddItem(rice)
	s.AddItem(milk)

	s.RemoveItem("G001")
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "D001", items[0].ID)

	// Absent id is a no-op.
	s.RemoveItem("G001")
	assert.Len(t, s.Items(), 1)
}

func TestTotals(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.TotalCount())
	assert.Equal(t, 0.0, s.TotalPrice())

	s.AddItem(rice)
	s.AddItem(rice)
	s.AddItem(milk)

	assert.Equal(t, 3, s.TotalCount())
	assert.Equal(t, 450*2+64.0, s.TotalPrice())
}

func TestClear(t *testing.T) {
	s := New()
	s.AddItem(rice)
	s.AddItem(milk)

	s.Clear()
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.TotalCount())
}

// Mirrors the storefront's canonical cart walkthrough: add, re-add,
// over-decrement, remove.
func TestCartWalkthrough(t *testing.T) {
	s := New()

	s.AddItem(rice)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	s.AddItem(rice)
	assert.Equal(t, 2, s.Items()[0].Quantity)

	s.UpdateQuantity("G001", -5)
	assert.Equal(t, 1, s.Items()[0].Quantity)

	s.RemoveItem("G001")
	assert.Empty(t, s.Items())
}
