package service

import "testing"

func TestTotalNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		discount int64
		fee      int64
		want     string
	}{
		{name: "plain", subtotal: 100000, discount: 0, fee: 2500, want: "102500.00"},
		{name: "percentage applied", subtotal: 100000, discount: 10000, fee: 5000, want: "95000.00"},
		{name: "discount equals subtotal", subtotal: 3000, discount: 3000, fee: 1500, want: "1500.00"},
		{name: "discount exceeds subtotal", subtotal: 3000, discount: 5000, fee: 0, want: "0.00"},
		{name: "fee only", subtotal: 0, discount: 0, fee: 2500, want: "2500.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Total(money(tc.subtotal), money(tc.discount), money(tc.fee))
			if got.String() != tc.want {
				t.Fatalf("Total(%d, %d, %d) = %s, want %s", tc.subtotal, tc.discount, tc.fee, got.String(), tc.want)
			}
		})
	}
}
