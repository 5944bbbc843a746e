// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi, returning the
// provided default when the string is empty or unparseable. Handlers use it
// for the page/limit query parameters, where a bad value should fall back
// rather than fail the request.
//
// Example:
//
//	page := utils.AtoiDefault(c.Query("page"), 1)
//	limit := utils.AtoiDefault(c.Query("limit"), 10)
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
