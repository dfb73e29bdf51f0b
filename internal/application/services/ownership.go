package services

import (
	"blindstore-api/internal/domain/user"
)

// authorize is the ownership guard: a principal may touch a resource iff it
// owns it. No sharing, groups or admin override exist. Every file operation
// runs this even though the blob store partitions by owner anyway; the
// partitioning is defense in depth, not a substitute.
func authorize(principal, resourceOwner user.UUID) bool {
	return principal == resourceOwner
}
