package model

import (
	"github.com/prekdu/library-lending/internal/errs"
)

const (
	periodicalLateFeePerDay = 0.75
	periodicalMaxLoanDays   = 7
)

type Periodical struct {
	resource
	issueNumber int
	frequency   string
}

var (
	_ LibraryResource = (*Periodical)(nil)
	_ Reservable      = (*Periodical)(nil)
	_ Renewable       = (*Periodical)(nil)
)

func NewPeriodical(id, title string, issueNumber int, frequency string) *Periodical {
	return &Periodical{
		resource:    newResource(id, title),
		issueNumber: issueNumber,
		frequency:   frequency,
	}
}

func (p *Periodical) IssueNumber() int {
	return p.issueNumber
}

// Frequency returns the publication cadence label, e.g. "weekly".
func (p *Periodical) Frequency() string {
	return p.frequency
}

func (p *Periodical) CalculateLateFee(daysLate int) float64 {
	return periodicalLateFeePerDay * float64(daysLate)
}

func (p *Periodical) MaxLoanPeriod() int {
	return periodicalMaxLoanDays
}

// Reserve transitions to RESERVED from any status except BORROWED. Unlike
// Book, an AVAILABLE periodical can be reserved directly and no record is
// kept of who reserved it.
func (p *Periodical) Reserve(_ *LibraryMember) error {
	if p.status == StatusBorrowed {
		return errs.ErrAlreadyBorrowed
	}
	p.setStatus(StatusReserved)
	return nil
}

// CancelReservation releases the periodical regardless of which member
// calls it.
func (p *Periodical) CancelReservation(_ *LibraryMember) {
	p.setStatus(StatusAvailable)
}

func (p *Periodical) RenewLoan(_ *LibraryMember) bool {
	return p.status == StatusBorrowed
}
