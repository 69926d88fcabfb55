// Package checkout composes outbound order messages for the WhatsApp
// hand-off.
//
// The storefront has no backend: checkout formats the cart and delivery
// details into a text message and hands the customer a wa.me link. The
// core state engine knows nothing about what happens after the link is
// opened.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/quickcart/internal/model"
)

// Composer renders order messages for one store identity.
type Composer struct {
	storeName string
	printer   *message.Printer
}

// New creates a composer for the given store name.
// Amounts are printed with en-IN number formatting (lakh/crore digit
// grouping), matching how the store quotes prices to customers.
func New(storeName string) *Composer {
	return &Composer{
		storeName: storeName,
		printer:   message.NewPrinter(language.MustParse("en-IN")),
	}
}

// Compose renders the order text for the given cart lines, delivery
// details, and grand total. Fails with model.ErrEmptyCart when there is
// nothing to order; delivery details are forwarded verbatim and never
// validated.
func (c *Composer) Compose(items []model.CartItem, details model.DeliveryDetails, total float64) (string, error) {
	if len(items) == 0 {
		return "", model.ErrEmptyCart
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*New Order: %s*\n\n", c.storeName)

	for i, it := range items {
		name := it.Name
		if it.Variant != "" {
			name = fmt.Sprintf("%s - %s", it.Name, it.Variant)
		}
		c.printer.Fprintf(&b, "%d. %s (%s) x %d = ₹%.2f\n", i+1, name, it.Unit, it.Quantity, it.Subtotal())
	}

	c.printer.Fprintf(&b, "\n*Total: ₹%.2f*\n", total)

	fmt.Fprintf(&b, "\nDelivery Details:\n")
	fmt.Fprintf(&b, "Address: %s\n", details.Address)
	fmt.Fprintf(&b, "Pincode: %s\n", details.Pincode)
	fmt.Fprintf(&b, "Contact: %s\n", details.Contact)

	return b.String(), nil
}

// WhatsAppURL builds the wa.me link that opens a chat with the store
// number, pre-filled with the order text.
func WhatsAppURL(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
