package checkout

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quickcart/internal/model"
)

func sampleItems() []model.CartItem {
	return []model.CartItem{
		{Product: model.Product{ID: "G001", Name: "Basmati Rice", Unit: "5 kg", Price: 450}, Quantity: 2},
		{Product: model.Product{ID: "D001", Name: "Fresh Milk", Unit: "1 L", Price: 64, Variant: "Amul Gold"}, Quantity: 1},
		{Product: model.Product{ID: "D002", Name: "Butter", Unit: "500 g", Price: 255, Variant: "Amul Pasteurized"}, Quantity: 1},
	}
}

func TestCompose_EmptyCart(t *testing.T) {
	c := New("Satya General Store")
	_, err := c.Compose(nil, model.DeliveryDetails{}, 0)
	assert.ErrorIs(t, err, model.ErrEmptyCart)
}

func TestCompose_Golden(t *testing.T) {
	c := New("Satya General Store")

	items := sampleItems()
	details := model.DeliveryDetails{
		Address: "12 MG Road, Pune",
		Pincode: "411001",
		Contact: "9876500000",
	}

	text, err := c.Compose(items, details, 450*2+64+255)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "order_message", []byte(text))
}

func TestCompose_IndianDigitGrouping(t *testing.T) {
	c := New("Satya General Store")

	items := []model.CartItem{
		{Product: model.Product{ID: "X1", Name: "Gift Hamper", Unit: "1 unit", Price: 125000}, Quantity: 1},
	}
	text, err := c.Compose(items, model.DeliveryDetails{}, 125000)
	require.NoError(t, err)

	// en-IN groups by twos past the first three digits.
	assert.Contains(t, text, "₹1,25,000.00")
}

func TestWhatsAppURL(t *testing.T) {
	url := WhatsAppURL("919876543210", "*New Order*\nline two")

	assert.Contains(t, url, "https://wa.me/919876543210?text=")
	assert.Contains(t, url, "%2ANew+Order%2A%0Aline+two")
}
