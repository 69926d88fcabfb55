package store

import (
	"strings"
	"testing"

	"github.com/roach88/quickcart/internal/model"
)

func TestMarshalRecord_NoHTMLEscaping(t *testing.T) {
	u := model.User{
		ID:    "u1",
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  model.RoleCustomer,
	}
	p := model.Product{
		ID:    "G001",
		Name:  "Basmati Rice",
		Image: "https://images.unsplash.com/photo-1586201375761?auto=format&fit=crop&q=80",
	}

	for _, v := range []any{u, p} {
		out, err := MarshalRecord(v)
		if err != nil {
			t.Fatalf("MarshalRecord() failed: %v", err)
		}
		if strings.Contains(out, `&`) {
			t.Errorf("MarshalRecord() escaped ampersand: %s", out)
		}
		if strings.HasSuffix(out, "\n") {
			t.Errorf("MarshalRecord() kept trailing newline: %q", out)
		}
	}
}

func TestMarshalRecord_RoundTrip(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Asha", Email: "asha@example.com", Password: "secret", Role: model.RoleAdmin},
		{ID: "u2", Name: "Ravi", Email: "ravi@example.com", Role: model.RoleCustomer},
	}

	out, err := MarshalRecord(users)
	if err != nil {
		t.Fatalf("MarshalRecord() failed: %v", err)
	}

	var got []model.User
	if err := UnmarshalRecord(out, &got); err != nil {
		t.Fatalf("UnmarshalRecord() failed: %v", err)
	}
	if len(got) != 2 || got[0] != users[0] || got[1] != users[1] {
		t.Errorf("round trip = %+v, want %+v", got, users)
	}
}

func TestMarshalRecord_OmitsEmptyPassword(t *testing.T) {
	u := model.User{ID: "u2", Name: "Ravi", Email: "ravi@example.com", Role: model.RoleCustomer}

	out, err := MarshalRecord(u)
	if err != nil {
		t.Fatalf("MarshalRecord() failed: %v", err)
	}
	if strings.Contains(out, "password") {
		t.Errorf("empty password serialized: %s", out)
	}
}
