package layouts

import "github.com/kanbananza/landing/internal/i18n"

// CalculateTitle suffixes page titles with the product name.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + i18n.BrandName
	}
	return i18n.BrandName
}
