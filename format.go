package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatCurrency rounds to cents for display only. A NaN total is shown
// as zero currency; intermediate NaN line items are not special-cased.
func formatCurrency(value float64) string {
	if math.IsNaN(value) {
		return "$0.00"
	}
	cents := roundCents(value)
	if cents < 0 {
		return fmt.Sprintf("-$%.2f", -cents)
	}
	return fmt.Sprintf("$%.2f", cents)
}

func formatAmount(value float64) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// parseNumber mirrors the permissive numeric handling of the pricing
// form: anything that fails to parse becomes NaN and propagates into the
// computed totals rather than being rejected.
func parseNumber(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

func formatHours(value float64) string {
	if math.IsNaN(value) {
		return "—"
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " h"
}

func formatPercent(value float64) string {
	if math.IsNaN(value) {
		return "—"
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
