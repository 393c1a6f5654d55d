package appointment

import "github.com/BruksfildServices01/clinic-agenda/internal/models"

// FinalPrice applies a percentage discount. No rounding is done here.
func FinalPrice(basePrice, discountPercent float64) float64 {
	return basePrice * (1 - discountPercent/100)
}

// Reprice recomputes Price from BasePrice and DiscountPercentage. Every write
// path calls it before persisting.
func Reprice(ap *models.Appointment) {
	ap.Price = FinalPrice(ap.BasePrice, ap.DiscountPercentage)
}
