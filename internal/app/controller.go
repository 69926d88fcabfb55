package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/quickcart/internal/cart"
	"github.com/roach88/quickcart/internal/catalog"
	"github.com/roach88/quickcart/internal/checkout"
	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/registry"
	"github.com/roach88/quickcart/internal/session"
)

// Tab identifies a main navigation destination.
type Tab string

const (
	TabHome     Tab = "home"
	TabProducts Tab = "products"
	TabSettings Tab = "settings"

	// TabCart is a navigation destination but not a content tab:
	// selecting it opens the cart overlay and leaves the active tab
	// unchanged.
	TabCart Tab = "cart"
)

// AdminView selects the admin sub-view within the management screen.
type AdminView string

const (
	AdminViewProducts AdminView = "products"
	AdminViewUsers    AdminView = "users"
)

// Controller composes the four stores and exposes every storefront
// operation to the presentation layer.
type Controller struct {
	mu sync.Mutex

	session  *session.Store
	registry *registry.Registry
	catalog  *catalog.Store
	cart     *cart.Store

	composer *checkout.Composer
	waNumber string
	confirm  Confirmer

	tab       Tab
	cartOpen  bool
	adminView AdminView
	delivery  model.DeliveryDetails
}

// Config carries the controller's collaborators and store identity.
type Config struct {
	Session   *session.Store
	Registry  *registry.Registry
	Catalog   *catalog.Store
	Cart      *cart.Store
	Confirmer Confirmer

	StoreName      string
	WhatsAppNumber string
}

/// New wires a controller in its initial state: home tab, cart overlay
// closed, admin sub-view on products.
func New(cfg Config) *Controller {
	confirm := cfg.Confirmer
	if confirm == nil {
		confirm = NeverConfirm
	}
	return &Controller{
		session:   cfg.Session,
		registry:  cfg.Registry,
		catalog:   cfg.Catalog,
		cart:      cfg.Cart,
		composer:  checkout.New(cfg.StoreName),
		waNumber:  cfg.WhatsAppNumber,
		confirm:   confirm,
		tab:       TabHome,
		adminView: AdminViewProducts,
	}
}

// Restore loads the persisted session and user collection at process
// start. A missing session slot means the storefront opens logged out.
func (c *Controller) Restore(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, err := c.session.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if err := c.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if u != nil {
		slog.Info("session restored", "user", u.ID, "role", u.Role)
	}
	return nil
}

// Login authenticates against the registry and opens a session.
// On success the registry is re-read so the admin view reflects
// accounts that self-registered since the last load, and the active tab
// resets to home.
func (c *Controller) Login(ctx context.Context, email, password string) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, err := c.registry.Authenticate(email, password)
	if err != nil {
		return model.User{}, err
	}
	if err := c.session.Login(ctx, u); err != nil {
		return model.User{}, err
	}
	if err := c.registry.Refresh(ctx); err != nil {
		return model.User{}, err
	}
	c.tab = TabHome
	slog.Info("login", "user", u.ID, "role", u.Role)
	return u, nil
}

// Register creates an account and immediately logs it in.
func (c *Controller) Register(ctx context.Context, name, email, password string, role model.Role) (model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	u, err := c.registry.Register(ctx, name, email, password, role)
	if err != nil {
		return model.User{}, err
	}
	if err := c.session.Login(ctx, u); err != nil {
		return model.User{}, err
	}
	c.tab = TabHome
	slog.Info("registered", "user", u.ID, "role", u.Role)
	return u, nil
}

// Logout destroys the session and resets the storefront to its initial
// state: cart emptied, cart overlay closed, admin sub-view back to
// products, active tab back to home. The whole cascade runs under one
// lock, so no render observes a partial reset.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.session.Logout(ctx); err != nil {
		return err
	}
	c.cart.Clear()
	c.cartOpen = false
	c.adminView = AdminViewProducts
	c.tab = TabHome
	slog.Info("logout")
	return nil
}

// SelectTab routes a navigation request. The cart destination opens the
// cart overlay and leaves the active tab alone; every other destination
// switches the tab and closes the overlay.
func (c *Controller) SelectTab(tab Tab) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	if tab == TabCart {
		c.cartOpen = true
		return nil
	}
	c.tab = tab
	c.cartOpen = false
	return nil
}

// CloseCart closes the cart overlay.
func (c *Controller) CloseCart() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	c.cartOpen = false
	return nil
}

// SetAdminView switches the admin management sub-view.
func (c *Controller) SetAdminView(v AdminView) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return err
	}
	c.adminView = v
	return nil
}

// SelectCategory sets the catalog filter.
func (c *Controller) SelectCategory(category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	c.catalog.Select(category)
	return nil
}

// AddToCart adds one unit of the identified product, snapshotting its
// current catalog fields.
func (c *Controller) AddToCart(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	p, ok := c.catalog.Product(productID)
	if !ok {
		return model.ErrProductNotFound
	}
	c.cart.AddItem(p)
	return nil
}

// UpdateQuantity adjusts a cart line by delta, clamped at 1.
func (c *Controller) UpdateQuantity(productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	c.cart.UpdateQuantity(productID, delta)
	return nil
}

// RemoveFromCart deletes a cart line.
func (c *Controller) RemoveFromCart(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	c.cart.RemoveItem(productID)
	return nil
}

// SetDeliveryDetails stores the checkout destination. Free-form; never
// validated here.
func (c *Controller) SetDeliveryDetails(d model.DeliveryDetails) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return err
	}
	c.delivery = d
	return nil
}

// Checkout composes the outbound order message and the wa.me link for
// the current cart and delivery details. The cart is left untouched:
// it empties only when the customer logs out or removes lines.
func (c *Controller) Checkout() (text, link string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireLogin(); err != nil {
		return "", "", err
	}
	text, err = c.composer.Compose(c.cart.Items(), c.delivery, c.cart.TotalPrice())
	if err != nil {
		return "", "", err
	}
	return text, checkout.WhatsAppURL(c.waNumber, text), nil
}

// AddProduct creates a catalog entry from the admin form.
func (c *Controller) AddProduct(input model.ProductInput) (model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return model.Product{}, err
	}
	p, err := c.catalog.AddProduct(input)
	if err != nil {
		return model.Product{}, err
	}
	slog.Info("product added", "id", p.ID, "name", p.Name, "category", p.Category)
	return p, nil
}

// DeleteProduct removes a product from the catalog and cascades to the
// cart: no line may reference a product the catalog no longer has.
func (c *Controller) DeleteProduct(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return err
	}
	if err := c.catalog.DeleteProduct(id); err != nil {
		return err
	}
	c.cart.RemoveItem(id)
	slog.Info("product deleted", "id", id)
	return nil
}

// AddCategory appends a category. Blank or duplicate names are silent
// no-ops, mirroring the catalog.
func (c *Controller) AddCategory(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return err
	}
	c.catalog.AddCategory(name)
	return nil
}

// DeleteCategory removes a category after explicit confirmation.
// Deleting the All sentinel is a silent no-op that never prompts.
// Declining the prompt leaves state unchanged.
func (c *Controller) DeleteCategory(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return err
	}
	if name == catalog.CategoryAll {
		return nil
	}
	if !c.confirm.Confirm(fmt.Sprintf("delete the %q category", name)) {
		return nil
	}
	c.catalog.DeleteCategory(name)
	slog.Info("category deleted", "name", name)
	return nil
}

// Users returns the registered accounts for the admin view, passwords
// redacted.
func (c *Controller) Users() ([]model.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return nil, err
	}
	return redactUsers(c.registry.List()), nil
}

// DeleteUser removes an account after explicit confirmation. The
// self-protection check runs before the prompt: an admin is told they
// cannot delete their own account without ever being asked to confirm.
func (c *Controller) DeleteUser(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(); err != nil {
		return err
	}
	current := c.session.Current()
	if id == current.ID {
		return model.ErrSelfDelete
	}
	if !c.confirm.Confirm("delete this account") {
		return nil
	}
	if err := c.registry.Delete(ctx, id, current.ID); err != nil {
		return err
	}
	slog.Info("user deleted", "id", id)
	return nil
}

// requireLogin gates operations that need a current session.
func (c *Controller) requireLogin() error {
	if !c.session.LoggedIn() {
		return model.ErrLoggedOut
	}
	return nil
}

// requireAdmin gates catalog- and user-management operations.
func (c *Controller) requireAdmin() error {
	if !c.session.LoggedIn() {
		return model.ErrLoggedOut
	}
	if !c.session.IsAdmin() {
		return model.ErrNotAdmin
	}
	return nil
}

func redactUsers(users []model.User) []model.User {
	for i := range users {
		users[i].Password = ""
	}
	return users
}
