package ports

import (
	"context"

	"ordering/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for members.
type MemberRepository interface {
	// Add persists a newly registered member.
	Add(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by id.
	Get(ctx context.Context, id string) (*member.Member, error)

	// ExistsWithID reports whether a member with the given id is already
	// registered. Used by the duplicate-id validation of the join flow.
	ExistsWithID(ctx context.Context, id string) (bool, error)
}
