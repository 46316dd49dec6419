package memberrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/member"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMemberRepository implements MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormMemberRepository creates a new GORM member repository.
func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly registered member to the database.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a member by id.
func (r *GormMemberRepository) Get(ctx context.Context, id string) (*member.Member, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsWithID reports whether a member with the given id is already registered.
func (r *GormMemberRepository) ExistsWithID(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errs.NewValueIsRequiredError("id")
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&MemberDTO{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
