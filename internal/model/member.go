package model

import (
	"github.com/pkg/errors"

	"github.com/prekdu/library-lending/internal/errs"
)

const (
	standardBorrowLimit = 5
	premiumBorrowLimit  = 10
)

// LibraryMember holds non-owning references to the resources it currently
// has checked out, in borrow order.
type LibraryMember struct {
	memberID       string
	membershipType MembershipType
	borrowed       []LibraryResource
}

func NewLibraryMember(id string, membershipType MembershipType) *LibraryMember {
	return &LibraryMember{
		memberID:       id,
		membershipType: membershipType,
	}
}

func (m *LibraryMember) MemberID() string {
	return m.memberID
}

func (m *LibraryMember) MembershipType() MembershipType {
	return m.membershipType
}

// BorrowedResources returns the currently checked-out resources in borrow
// order. Callers must not modify the returned slice.
func (m *LibraryMember) BorrowedResources() []LibraryResource {
	return m.borrowed
}

func (m *LibraryMember) maxBorrowLimit() int {
	if m.membershipType == MembershipPremium {
		return premiumBorrowLimit
	}
	return standardBorrowLimit
}

// BorrowResource checks the member's loan cap and the resource status, then
// marks the resource BORROWED and records it. Only an AVAILABLE resource can
// be borrowed; reserved stock is rejected separately so callers can tell the
// two refusals apart.
func (m *LibraryMember) BorrowResource(r LibraryResource) error {
	if len(m.borrowed) >= m.maxBorrowLimit() {
		return errs.ErrLoanLimitExceeded
	}
	switch r.Status() {
	case StatusAvailable:
		r.setStatus(StatusBorrowed)
		m.borrowed = append(m.borrowed, r)
		return nil
	case StatusReserved:
		return errors.Wrap(errs.ErrResourceNotAvailable, "resource is reserved")
	default:
		return errors.Wrap(errs.ErrResourceNotAvailable, "resource is not available")
	}
}

// ReturnResource drops r from the member's borrowed set (no-op when absent)
// and sets its status back to AVAILABLE. The status reset is unconditional,
// even when the resource is reserved by another member or was never borrowed
// by this one.
func (m *LibraryMember) ReturnResource(r LibraryResource) {
	for i, borrowed := range m.borrowed {
		if borrowed == r {
			m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
			break
		}
	}
	r.setStatus(StatusAvailable)
}
