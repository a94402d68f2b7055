package money

import "fmt"

// Format renders integer cents as a two-decimal amount, e.g. 1099 -> "10.99".
// All arithmetic stays in the minor unit; no float division involved.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
