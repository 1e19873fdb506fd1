// File: internal/service/text.go
package service

import "strings"

// NormalizeOptionalText 去除前後空白，空字串一律視為未提供。
func NormalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := strings.TrimSpace(*value)
	if normalized == "" {
		return nil
	}
	return &normalized
}
