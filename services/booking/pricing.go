package booking

import "fmt"

// DefaultUnitPrice is the price of one ticket when none is configured.
const DefaultUnitPrice = 25.0

// CalculateAmount returns the total price of tickets at unitPrice each.
func CalculateAmount(unitPrice float64, tickets int) float64 {
	return float64(tickets) * unitPrice
}

// FormatAmount renders an amount for display, e.g. "$75.00".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
