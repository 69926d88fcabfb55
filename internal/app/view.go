package app

import "github.com/roach88/quickcart/internal/model"

// View is the per-render-cycle snapshot handed to the presentation
// layer. It is a value copy: nothing in it aliases controller state.
//
// An unauthenticated session only ever observes the login/registration
// view, so everything beyond Authenticated stays zero until login.
type View struct {
	Authenticated bool        `json:"authenticated"`
	User          *model.User `json:"user,omitempty"`

	ActiveTab Tab       `json:"active_tab,omitempty"`
	CartOpen  bool      `json:"cart_open,omitempty"`
	AdminView AdminView `json:"admin_view,omitempty"`

	Categories       []string        `json:"categories,omitempty"`
	SelectedCategory string          `json:"selected_category,omitempty"`
	Products         []model.Product `json:"products,omitempty"`
	Featured         []model.Product `json:"featured,omitempty"`

	Cart      []model.CartItem      `json:"cart,omitempty"`
	CartCount int                   `json:"cart_count,omitempty"`
	CartTotal float64               `json:"cart_total,omitempty"`
	Delivery  model.DeliveryDetails `json:"delivery"`

	// Users is populated only for admin sessions, passwords redacted.
	Users []model.User `json:"users,omitempty"`
}

// View renders the current application state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	u := c.session.Current()
	if u == nil {
		return View{}
	}
	u.Password = ""

	v := View{
		Authenticated:    true,
		User:             u,
		ActiveTab:        c.tab,
		CartOpen:         c.cartOpen,
		AdminView:        c.adminView,
		Categories:       c.catalog.Categories(),
		SelectedCategory: c.catalog.Selected(),
		Products:         c.catalog.Filtered(),
		Featured:         c.catalog.Featured(),
		Cart:             c.cart.Items(),
		CartCount:        c.cart.TotalCount(),
		CartTotal:        c.cart.TotalPrice(),
		Delivery:         c.delivery,
	}
	if u.IsAdmin() {
		v.Users = redactUsers(c.registry.List())
	}
	return v
}
