package actions

import (
	"errors"
	"strings"
	"testing"

	"github.com/swagshop/swagshop/internal/verify"
)

// stubDriver serves canned element state for workflow tests
type stubDriver struct {
	texts    map[string][]string
	visible  map[string]bool
	selected string
	failWait bool
}

func newStubDriver() *stubDriver {
	return &stubDriver{
		texts:   make(map[string][]string),
		visible: make(map[string]bool),
	}
}

func (d *stubDriver) Goto(url string) error  { return nil }
func (d *stubDriver) Click(sel string) error { return nil }
func (d *stubDriver) Fill(sel, val string) error {
	return nil
}

func (d *stubDriver) SelectOption(sel, val string) error {
	d.selected = val
	return nil
}

func (d *stubDriver) Text(sel string) (string, error) {
	if texts := d.texts[sel]; len(texts) > 0 {
		return texts[0], nil
	}
	return "", errors.New("no such element")
}

func (d *stubDriver) Texts(sel string) ([]string, error) {
	return d.texts[sel], nil
}

func (d *stubDriver) IsVisible(sel string) (bool, error) {
	return d.visible[sel], nil
}

func (d *stubDriver) URL() string { return "" }

func (d *stubDriver) WaitForURL(pattern string) error {
	if d.failWait {
		return errors.New("timeout waiting for " + pattern)
	}
	return nil
}

func TestShopper_VerifyInventoryOrder(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		prices []string
		spec   verify.SortSpec
		want   verify.Verdict
	}{
		{
			name:   "sorted prices ascending",
			prices: []string{"$5.00", "$10.00", "$25.50"},
			spec:   verify.SortSpec{Key: verify.KeyPrice, Direction: verify.Ascending},
			want:   verify.Verdict{Sorted: true},
		},
		{
			name:   "unsorted prices reported with index",
			prices: []string{"$10.00", "$25.50", "$5.00"},
			spec:   verify.SortSpec{Key: verify.KeyPrice, Direction: verify.Ascending},
			want:   verify.Verdict{Sorted: false, Index: 0, Got: "$10.00", Want: "$5.00"},
		},
		{
			name:  "sorted names descending",
			names: []string{"Zebra", "Monkey", "Apple"},
			spec:  verify.SortSpec{Key: verify.KeyName, Direction: verify.Descending},
			want:  verify.Verdict{Sorted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := newStubDriver()
			driver.texts[".inventory-item-name"] = tt.names
			driver.texts[".inventory-item-price"] = tt.prices

			shopper := NewShopper(driver, "http://localhost:8080")
			verdict, err := shopper.VerifyInventoryOrder(tt.spec)
			if err != nil {
				t.Fatalf("VerifyInventoryOrder() error = %v", err)
			}
			if verdict != tt.want {
				t.Errorf("VerifyInventoryOrder() = %+v, want %+v", verdict, tt.want)
			}
		})
	}
}

func TestShopper_VerifyInventoryOrder_ParseError(t *testing.T) {
	driver := newStubDriver()
	driver.texts[".inventory-item-price"] = []string{"$5.00", "free!", "$25.50"}

	shopper := NewShopper(driver, "http://localhost:8080")
	_, err := shopper.VerifyInventoryOrder(verify.SortSpec{Key: verify.KeyPrice, Direction: verify.Ascending})

	var parseErr *verify.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got %v", err)
	}
	if parseErr.Index != 1 || parseErr.Text != "free!" {
		t.Errorf("ParseError = %+v, want index 1 text free!", parseErr)
	}
}

func TestShopper_SortInventoryBy(t *testing.T) {
	tests := []struct {
		name    string
		spec    verify.SortSpec
		want    string
		wantErr bool
	}{
		{
			name: "name ascending",
			spec: verify.SortSpec{Key: verify.KeyName, Direction: verify.Ascending},
			want: "name_asc",
		},
		{
			name: "price descending",
			spec: verify.SortSpec{Key: verify.KeyPrice, Direction: verify.Descending},
			want: "price_desc",
		},
		{
			name:    "unknown key",
			spec:    verify.SortSpec{Key: verify.Key("rating"), Direction: verify.Ascending},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := newStubDriver()
			shopper := NewShopper(driver, "http://localhost:8080")

			err := shopper.SortInventoryBy(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("SortInventoryBy() error = %v", err)
			}
			if driver.selected != tt.want {
				t.Errorf("Selected option = %q, want %q", driver.selected, tt.want)
			}
		})
	}
}

func TestShopper_LogIn_FailsWhenRedirectMissing(t *testing.T) {
	driver := newStubDriver()
	driver.failWait = true

	shopper := NewShopper(driver, "http://localhost:8080")
	err := shopper.LogIn("standard_user", "secret_sauce")
	if err == nil {
		t.Fatal("Expected error when inventory page never loads")
	}
	if !strings.Contains(err.Error(), "inventory") {
		t.Errorf("Error = %v, want mention of inventory page", err)
	}
}

func TestShopper_FailedLoginMessage(t *testing.T) {
	driver := newStubDriver()
	driver.visible[".error-message"] = true
	driver.texts[".error-message"] = []string{"Sorry, this user has been locked out."}

	shopper := NewShopper(driver, "http://localhost:8080")
	msg, err := shopper.FailedLoginMessage("locked_out_user", "secret_sauce")
	if err != nil {
		t.Fatalf("FailedLoginMessage() error = %v", err)
	}
	if !strings.Contains(msg, "locked out") {
		t.Errorf("Message = %q, want lockout text", msg)
	}
}

func TestShopper_FailedLoginMessage_NoBanner(t *testing.T) {
	driver := newStubDriver()

	shopper := NewShopper(driver, "http://localhost:8080")
	if _, err := shopper.FailedLoginMessage("standard_user", "secret_sauce"); err == nil {
		t.Error("Expected error when no banner is shown")
	}
}
