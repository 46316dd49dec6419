// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// This package implements the repository pattern for the member domain aggregate, handling
// the conversion between domain entities and database representations.
package memberrepo

import (
	"ordering/internal/core/domain/model/member"
)

// MemberDTO represents the database structure for persisting member aggregates.
type MemberDTO struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
	Password string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

// fromDomain converts a member domain aggregate to its database representation.
func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:       aggregate.ID(),
		Name:     aggregate.Name(),
		Password: aggregate.Password(),
	}
}

// toDomain converts a database DTO to a member domain aggregate.
func toDomain(dto MemberDTO) (*member.Member, error) {
	return member.NewMember(dto.ID, dto.Name, dto.Password)
}
