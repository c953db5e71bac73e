package model

// LibraryResource is the common contract of every resource variant.
// The status setter is deliberately unexported: callers drive transitions
// through LibraryMember and the Reservable/Renewable operations, which keeps
// the status machine closed to this package.
type LibraryResource interface {
	ResourceID() string
	Title() string
	Status() ResourceStatus

	// CalculateLateFee returns the fee for daysLate overdue days.
	// daysLate must be non-negative.
	CalculateLateFee(daysLate int) float64

	// MaxLoanPeriod returns the loan period of the variant in days.
	MaxLoanPeriod() int

	setStatus(s ResourceStatus)
}

// Renewable is implemented by variants whose loans can be renewed.
type Renewable interface {
	RenewLoan(member *LibraryMember) bool
}

// Reservable is implemented by variants that support reservations.
type Reservable interface {
	Reserve(member *LibraryMember) error
	CancelReservation(member *LibraryMember)
}

// resource holds the identity and state shared by all variants.
type resource struct {
	id     string
	title  string
	status ResourceStatus
}

func newResource(id, title string) resource {
	return resource{
		id:     id,
		title:  title,
		status: StatusAvailable,
	}
}

func (r *resource) ResourceID() string {
	return r.id
}

func (r *resource) Title() string {
	return r.title
}

func (r *resource) Status() ResourceStatus {
	return r.status
}

func (r *resource) setStatus(s ResourceStatus) {
	r.status = s
}
