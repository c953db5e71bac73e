package model

import (
	"github.com/prekdu/library-lending/internal/errs"
)

const (
	bookLateFeePerDay = 0.5
	bookMaxLoanDays   = 14
)

// Book supports at most one outstanding reservation, held in reservedBy.
type Book struct {
	resource
	author     string
	isbn       string
	reservedBy *LibraryMember
}

var (
	_ LibraryResource = (*Book)(nil)
	_ Reservable      = (*Book)(nil)
	_ Renewable       = (*Book)(nil)
)

func NewBook(id, title, author, isbn string) *Book {
	return &Book{
		resource: newResource(id, title),
		author:   author,
		isbn:     isbn,
	}
}

func (b *Book) Author() string {
	return b.author
}

func (b *Book) ISBN() string {
	return b.isbn
}

// ReservedBy returns the member holding the reservation, nil if none.
func (b *Book) ReservedBy() *LibraryMember {
	return b.reservedBy
}

func (b *Book) CalculateLateFee(daysLate int) float64 {
	return bookLateFeePerDay * float64(daysLate)
}

func (b *Book) MaxLoanPeriod() int {
	return bookMaxLoanDays
}

// Reserve queues member for the book. A book must already be out on loan
// before another member may reserve it: reserving an AVAILABLE book is
// rejected, as is reserving on top of an existing reservation.
func (b *Book) Reserve(member *LibraryMember) error {
	switch {
	case b.status == StatusBorrowed && b.reservedBy == nil:
		b.setStatus(StatusReserved)
		b.reservedBy = member
		return nil
	case b.status == StatusReserved || b.status == StatusAvailable:
		return errs.ErrInvalidState
	}
	// BORROWED with an outstanding reservation: no-op.
	return nil
}

// CancelReservation clears the reservation only when member is the one
// holding it; any other caller is a no-op.
func (b *Book) CancelReservation(member *LibraryMember) {
	if b.reservedBy != nil && b.reservedBy == member {
		b.reservedBy = nil
		b.setStatus(StatusAvailable)
	}
}

func (b *Book) RenewLoan(_ *LibraryMember) bool {
	return b.status == StatusBorrowed
}
