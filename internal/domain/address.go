package domain

import (
	"fmt"
	"strings"

	"github.com/yourlocalshop/storefront/pkg/errors"
)

// Address is a delivery address. It may exist transiently in an invalid
// state; Validate is always called before the address is used to compute
// shipping or to build an order.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
}

// Validate checks completeness and postcode format. It returns an
// ErrInvalidAddress describing the first problem found, or nil.
func (a Address) Validate() error {
	if strings.TrimSpace(a.Street) == "" {
		return &errors.ErrInvalidAddress{Message: "street address required"}
	}
	if strings.TrimSpace(a.City) == "" {
		return &errors.ErrInvalidAddress{Message: "city required"}
	}
	if strings.TrimSpace(a.State) == "" {
		return &errors.ErrInvalidAddress{Message: "state required"}
	}
	postcode := strings.TrimSpace(a.Postcode)
	if postcode == "" {
		return &errors.ErrInvalidAddress{Message: "postcode required"}
	}
	if !isFourDigits(postcode) {
		return &errors.ErrInvalidAddress{Message: "postcode must be 4 digits"}
	}
	return nil
}

// Format renders the address as a single display line,
// e.g. "123 Main St, Melbourne, VIC 3000".
func (a Address) Format() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Postcode)
}

func isFourDigits(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
