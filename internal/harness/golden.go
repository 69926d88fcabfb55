package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/quickcart/internal/app"
	"github.com/roach88/quickcart/internal/model"
)

// Snapshot is the golden-file rendering of a scenario outcome.
// It is deliberately compact: ids and formatted amounts instead of full
// records, so a reviewer can read a golden file top to bottom.
type Snapshot struct {
	Scenario string   `json:"scenario"`
	Intents  []string `json:"intents,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Order    []string `json:"order_message,omitempty"`
	State    State    `json:"state"`
}

// State summarizes the final render view.
type State struct {
	Authenticated    bool     `json:"authenticated"`
	User             string   `json:"user,omitempty"`
	ActiveTab        string   `json:"active_tab,omitempty"`
	CartOpen         bool     `json:"cart_open,omitempty"`
	AdminView        string   `json:"admin_view,omitempty"`
	SelectedCategory string   `json:"selected_category,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Products         []string `json:"products,omitempty"`
	Featured         []string `json:"featured,omitempty"`
	Cart             []string `json:"cart,omitempty"`
	CartTotal        string   `json:"cart_total,omitempty"`
	Delivery         string   `json:"delivery,omitempty"`
	Users            []string `json:"users,omitempty"`
}

// RunWithGolden executes a scenario and compares its snapshot against
// the golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution fails outright; golden
// mismatches and unexpected step failures fail the test.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, f := range result.Failures {
		t.Errorf("step failed: %s", f)
	}

	snapshot := BuildSnapshot(scenario.Name, result)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}

// BuildSnapshot converts a result into its golden-file form.
func BuildSnapshot(name string, result *Result) Snapshot {
	s := Snapshot{
		Scenario: name,
		Intents:  result.Intents,
		Errors:   result.Errors,
		State:    summarize(result.Final),
	}
	if result.OrderMessage != "" {
		s.Order = strings.Split(strings.TrimRight(result.OrderMessage, "\n"), "\n")
	}
	return s
}

func summarize(v app.View) State {
	s := State{
		Authenticated:    v.Authenticated,
		ActiveTab:        string(v.ActiveTab),
		CartOpen:         v.CartOpen,
		AdminView:        string(v.AdminView),
		SelectedCategory: v.SelectedCategory,
		Categories:       v.Categories,
	}
	if v.User != nil {
		s.User = fmt.Sprintf("%s (%s) %s", v.User.Name, v.User.Email, v.User.Role)
	}
	for _, p := range v.Products {
		s.Products = append(s.Products, p.ID)
	}
	for _, p := range v.Featured {
		s.Featured = append(s.Featured, p.ID)
	}
	for _, it := range v.Cart {
		s.Cart = append(s.Cart, fmt.Sprintf("%s x %d = %.2f", it.ID, it.Quantity, it.Subtotal()))
	}
	if len(v.Cart) > 0 {
		s.CartTotal = fmt.Sprintf("%.2f", v.CartTotal)
	}
	if v.Delivery != (model.DeliveryDetails{}) {
		s.Delivery = fmt.Sprintf("%s / %s / %s", v.Delivery.Address, v.Delivery.Pincode, v.Delivery.Contact)
	}
	for _, u := range v.Users {
		s.Users = append(s.Users, fmt.Sprintf("%s (%s) %s", u.Name, u.Email, u.Role))
	}
	return s
}
