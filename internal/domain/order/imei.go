package order

import (
	"fmt"
	"strconv"

	"github.com/theplant/luhn"
)

const imeiLength = 15

// InvalidIMEIError indicates a device identifier that is not a 15-digit IMEI
// with a valid Luhn check digit.
type InvalidIMEIError struct {
	IMEI string
}

func (e *InvalidIMEIError) Error() string {
	return fmt.Sprintf("invalid IMEI %q", e.IMEI)
}

// ValidateIMEI checks length, digits and the Luhn check digit of imei.
func ValidateIMEI(imei string) error {
	if len(imei) != imeiLength {
		return &InvalidIMEIError{IMEI: imei}
	}
	for i := range len(imei) {
		if imei[i] < '0' || imei[i] > '9' {
			return &InvalidIMEIError{IMEI: imei}
		}
	}
	n, err := strconv.Atoi(imei)
	if err != nil || !luhn.Valid(n) {
		return &InvalidIMEIError{IMEI: imei}
	}
	return nil
}
