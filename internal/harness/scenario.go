package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/quickcart/internal/model"
)

// Scenario defines a storefront walkthrough.
// Scenarios register accounts, execute a flow of storefront operations
// against a fresh in-memory slot database, and snapshot the final
// render view for golden comparison.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden
	// file in testdata/golden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Users lists accounts registered before the flow runs.
	Users []UserSetup `yaml:"users"`

	// ProductIDs provides the predetermined ids handed out for new
	// products, in order. A flow that adds more products than listed
	// here is misconfigured and panics.
	ProductIDs []string `yaml:"product_ids,omitempty"`

	// Confirm is the scripted answer to every destructive-action
	// prompt raised during the flow.
	Confirm bool `yaml:"confirm,omitempty"`

	// Flow contains the operations to execute, in order.
	Flow []Step `yaml:"flow"`
}

// UserSetup describes an account registered during scenario setup.
type UserSetup struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// Role is "admin" or "customer"; blank means customer.
	Role string `yaml:"role,omitempty"`
}

// Step is one storefront operation in the flow.
type Step struct {
	// Op names the operation (see the Op* constants).
	Op string `yaml:"op"`

	// Args carries the operation's arguments as strings. Numeric
	// arguments ("delta") are parsed during execution.
	Args map[string]string `yaml:"args,omitempty"`

	// ExpectError, when set, requires the operation to fail with an
	// error containing this substring. The error is recorded in the
	// result rather than failing the scenario.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Operation names accepted in scenario flows.
const (
	OpLogin          = "login"
	OpRegister       = "register"
	OpLogout         = "logout"
	OpSelectTab      = "select_tab"
	OpCloseCart      = "close_cart"
	OpSetAdminView   = "set_admin_view"
	OpSelectCategory = "select_category"
	OpAddToCart      = "add_to_cart"
	OpUpdateQuantity = "update_quantity"
	OpRemoveFromCart = "remove_from_cart"
	OpSetDelivery    = "set_delivery"
	OpCheckout       = "checkout"
	OpAddProduct     = "add_product"
	OpDeleteProduct  = "delete_product"
	OpAddCategory    = "add_category"
	OpDeleteCategory = "delete_category"
	OpDeleteUser     = "delete_user"
)

var knownOps = map[string]bool{
	OpLogin: true, OpRegister: true, OpLogout: true,
	OpSelectTab: true, OpCloseCart: true, OpSetAdminView: true,
	OpSelectCategory: true, OpAddToCart: true, OpUpdateQuantity: true,
	OpRemoveFromCart: true, OpSetDelivery: true, OpCheckout: true,
	OpAddProduct: true, OpDeleteProduct: true, OpAddCategory: true,
	OpDeleteCategory: true, OpDeleteUser: true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "flows:" vs "flow:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	for i, u := range s.Users {
		if u.Name == "" || u.Email == "" || u.Password == "" {
			return fmt.Errorf("users[%d]: name, email and password are required", i)
		}
		switch model.Role(u.Role) {
		case "", model.RoleAdmin, model.RoleCustomer:
		default:
			return fmt.Errorf("users[%d]: unknown role %q", i, u.Role)
		}
	}

	for i, step := range s.Flow {
		if step.Op == "" {
			return fmt.Errorf("flow[%d]: op is required", i)
		}
		if !knownOps[step.Op] {
			return fmt.Errorf("flow[%d]: unknown op %q", i, step.Op)
		}
	}

	return nil
}

// role resolves the setup role string, defaulting to customer.
func (u UserSetup) role() model.Role {
	if u.Role == string(model.RoleAdmin) {
		return model.RoleAdmin
	}
	return model.RoleCustomer
}
