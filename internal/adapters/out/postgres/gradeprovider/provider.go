// Package gradeprovider resolves buyer facts used by the discount calculation.
package gradeprovider

import (
	"strings"

	"ordering/internal/adapters/out/postgres/memberrepo"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// gradeRates maps a membership grade to its percentage discount.
var gradeRates = map[string]int{
	"VIP":    50,
	"GOLD":   20,
	"SILVER": 10,
	"BASIC":  0,
}

// GormUserGradeProvider implements services.UserGradeProvider against the
// members table. Orders carry no buyer reference, so registered membership
// stands in for order history.
type GormUserGradeProvider struct {
	db *gorm.DB
}

// NewGormUserGradeProvider creates a provider backed by the given database.
func NewGormUserGradeProvider(db *gorm.DB) *GormUserGradeProvider {
	return &GormUserGradeProvider{db: db}
}

// HasOrders reports whether the user is a registered member.
func (p *GormUserGradeProvider) HasOrders(userID string) (bool, error) {
	if userID == "" {
		return false, errs.NewValueIsRequiredError("userID")
	}

	var count int64
	if err := p.db.Model(&memberrepo.MemberDTO{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DiscountRatePercent returns the percentage discount for the grade.
func (p *GormUserGradeProvider) DiscountRatePercent(grade string) (int, error) {
	rate, ok := gradeRates[strings.ToUpper(grade)]
	if !ok {
		return 0, errs.NewValueIsInvalidError("grade")
	}
	return rate, nil
}
