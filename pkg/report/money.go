package report

import (
	"fmt"
	"math"
	"strings"
)

// groupThousands inserts commas into a non-negative integer's decimal digits.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Money renders a salary as "$75,000": the amount truncated to a whole
// dollar figure with thousands grouping.
func Money(amount float64) string {
	return "$" + groupThousands(int64(amount))
}

// MoneyRounded renders a salary as "$67,500" rounded to the nearest dollar.
func MoneyRounded(amount float64) string {
	return "$" + groupThousands(int64(math.Round(amount)))
}

// MoneyCents renders a salary as "$67,500.00" with two decimal places.
// Rounding happens on the total cent count so a fraction that rounds up
// carries into the dollar figure.
func MoneyCents(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(cents/100), cents%100)
}
