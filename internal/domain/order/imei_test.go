package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIMEI(t *testing.T) {
	tests := []struct {
		name  string
		imei  string
		valid bool
	}{
		{name: "valid", imei: "490154203237518", valid: true},
		{name: "valid leading zero", imei: "004999010640000", valid: true},
		{name: "bad check digit", imei: "490154203237519"},
		{name: "too short", imei: "49015420323751"},
		{name: "too long", imei: "4901542032375180"},
		{name: "non digit", imei: "49015420323751A"},
		{name: "empty", imei: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIMEI(tt.imei)
			if tt.valid {
				require.NoError(t, err)
				return
			}
			var imeiErr *InvalidIMEIError
			require.ErrorAs(t, err, &imeiErr)
			assert.Equal(t, tt.imei, imeiErr.IMEI)
		})
	}
}
