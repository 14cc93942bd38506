// Package upi builds UPI deep links for merchant payment requests.
package upi

import (
	"net/url"

	"github.com/shopspring/decimal"
)

// PayLink builds a upi://pay deep link for the given payee and amount.
// The amount is always rendered with two decimal places and the currency
// is fixed to INR. Empty payee id/name are allowed; they encode as empty
// query values (the scanning app prompts for the missing details).
func PayLink(payeeID, payeeName string, amount decimal.Decimal) string {
	// Parameter order follows the conventional pa/pn/am/cu layout rather
	// than url.Values' sorted encoding.
	return "upi://pay?pa=" + url.QueryEscape(payeeID) +
		"&pn=" + url.QueryEscape(payeeName) +
		"&am=" + amount.StringFixed(2) +
		"&cu=INR"
}
