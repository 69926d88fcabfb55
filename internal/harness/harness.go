// Package harness provides a scenario-driven walkthrough framework for
// the storefront controller.
//
// Scenarios are YAML files describing a sequence of storefront
// operations: who registers, who logs in, what goes in the cart, what
// the admin deletes. Each scenario runs against a fresh in-memory slot
// database with a scripted confirmation responder and predetermined
// product ids, so every run produces the same final render view. That
// view is snapshotted and compared against a golden file.
//
// The harness drives the real controller, not a stand-in: every step
// goes through the same gating, cascades, and persistence as the HTTP
// surface.
package harness

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/quickcart/internal/app"
	"github.com/roach88/quickcart/internal/cart"
	"github.com/roach88/quickcart/internal/catalog"
	"github.com/roach88/quickcart/internal/model"
	"github.com/roach88/quickcart/internal/registry"
	"github.com/roach88/quickcart/internal/seed"
	"github.com/roach88/quickcart/internal/session"
	"github.com/roach88/quickcart/internal/store"
)

// Result captures the outcome of one scenario run.
type Result struct {
	// Passed is true when no step failed unexpectedly.
	Passed bool

	// Failures lists steps that errored without a matching
	// expect_error, or whose expected error never happened.
	Failures []string

	// Errors lists expected errors that were observed, as "op: message".
	Errors []string

	// Intents lists the confirmation prompts raised, in order.
	Intents []string

	// OrderMessage is the composed order text from the last checkout.
	OrderMessage string

	// Final is the render view after the last step.
	Final app.View
}

type harness struct {
	ctrl     *app.Controller
	registry *registry.Registry
	result   *Result
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation. The
// catalog starts from the embedded default seed; accounts come from the
// scenario's users list.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()

	reg := registry.New(st)
	if err := reg.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i, u := range scenario.Users {
		if _, err := reg.Register(ctx, u.Name, u.Email, u.Password, u.role()); err != nil {
			return nil, fmt.Errorf("users[%d]: %w", i, err)
		}
	}

	result := &Result{}
	confirmer := app.ConfirmerFunc(func(intent string) bool {
		result.Intents = append(result.Intents, intent)
		return scenario.Confirm
	})

	sd := seed.Default()
	ctrl := app.New(app.Config{
		Session:        session.New(st),
		Registry:       reg,
		Catalog:        catalog.New(sd.Products, sd.Categories, catalog.NewFixedGenerator(scenario.ProductIDs...)),
		Cart:           cart.New(),
		Confirmer:      confirmer,
		StoreName:      "Satya General Store",
		WhatsAppNumber: "919876543210",
	})
	if err := ctrl.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore state: %w", err)
	}

	h := &harness{ctrl: ctrl, registry: reg, result: result}

	for i, step := range scenario.Flow {
		err := h.execute(ctx, step)
		switch {
		case step.ExpectError != "":
			if err == nil {
				result.Failures = append(result.Failures,
					fmt.Sprintf("flow[%d] %s: expected error containing %q, got none", i, step.Op, step.ExpectError))
			} else if !strings.Contains(err.Error(), step.ExpectError) {
				result.Failures = append(result.Failures,
					fmt.Sprintf("flow[%d] %s: expected error containing %q, got %q", i, step.Op, step.ExpectError, err))
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", step.Op, err))
			}
		case err != nil:
			result.Failures = append(result.Failures,
				fmt.Sprintf("flow[%d] %s: %v", i, step.Op, err))
		}
	}

	result.Final = h.ctrl.View()
	result.Passed = len(result.Failures) == 0
	return result, nil
}

// execute dispatches one flow step to the controller.
func (h *harness) execute(ctx context.Context, step Step) error {
	a := step.Args
	switch step.Op {
	case OpLogin:
		_, err := h.ctrl.Login(ctx, a["email"], a["password"])
		return err
	case OpRegister:
		_, err := h.ctrl.Register(ctx, a["name"], a["email"], a["password"], model.RoleCustomer)
		return err
	case OpLogout:
		return h.ctrl.Logout(ctx)
	case OpSelectTab:
		return h.ctrl.SelectTab(app.Tab(a["tab"]))
	case OpCloseCart:
		return h.ctrl.CloseCart()
	case OpSetAdminView:
		return h.ctrl.SetAdminView(app.AdminView(a["view"]))
	case OpSelectCategory:
		return h.ctrl.SelectCategory(a["category"])
	case OpAddToCart:
		return h.ctrl.AddToCart(a["product"])
	case OpUpdateQuantity:
		delta, err := strconv.Atoi(a["delta"])
		if err != nil {
			return fmt.Errorf("bad delta %q: %w", a["delta"], err)
		}
		return h.ctrl.UpdateQuantity(a["product"], delta)
	case OpRemoveFromCart:
		return h.ctrl.RemoveFromCart(a["product"])
	case OpSetDelivery:
		return h.ctrl.SetDeliveryDetails(model.DeliveryDetails{
			Address: a["address"],
			Pincode: a["pincode"],
			Contact: a["contact"],
		})
	case OpCheckout:
		text, _, err := h.ctrl.Checkout()
		if err != nil {
			return err
		}
		h.result.OrderMessage = text
		return nil
	case OpAddProduct:
		_, err := h.ctrl.AddProduct(model.ProductInput{
			Name:        a["name"],
			Category:    a["category"],
			Price:       a["price"],
			Unit:        a["unit"],
			Variant:     a["variant"],
			Description: a["description"],
			Image:       a["image"],
		})
		return err
	case OpDeleteProduct:
		return h.ctrl.DeleteProduct(a["product"])
	case OpAddCategory:
		return h.ctrl.AddCategory(a["category"])
	case OpDeleteCategory:
		return h.ctrl.DeleteCategory(a["category"])
	case OpDeleteUser:
		id, err := h.userID(a["email"])
		if err != nil {
			return err
		}
		return h.ctrl.DeleteUser(ctx, id)
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

// userID resolves a setup account's id by email. Scenarios reference
// accounts by email because ids are assigned at registration.
func (h *harness) userID(email string) (string, error) {
	for _, u := range h.registry.List() {
		if u.Email == email {
			return u.ID, nil
		}
	}
	return "", fmt.Errorf("no account with email %q", email)
}
