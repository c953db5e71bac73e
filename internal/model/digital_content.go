package model

const (
	digitalLateFeePerDay = 0.25
	digitalMaxLoanDays   = 7
)

// DigitalContent is not reservable: any number of concurrent loans is
// implied, so no borrower cap exists at the resource level.
type DigitalContent struct {
	resource
	fileSizeMB float64
	format     ContentFormat
}

var (
	_ LibraryResource = (*DigitalContent)(nil)
	_ Renewable       = (*DigitalContent)(nil)
)

func NewDigitalContent(id, title string, fileSizeMB float64, format ContentFormat) *DigitalContent {
	return &DigitalContent{
		resource:   newResource(id, title),
		fileSizeMB: fileSizeMB,
		format:     format,
	}
}

// FileSizeMB returns the content size in megabytes.
func (d *DigitalContent) FileSizeMB() float64 {
	return d.fileSizeMB
}

func (d *DigitalContent) Format() ContentFormat {
	return d.format
}

func (d *DigitalContent) CalculateLateFee(daysLate int) float64 {
	return digitalLateFeePerDay * float64(daysLate)
}

func (d *DigitalContent) MaxLoanPeriod() int {
	return digitalMaxLoanDays
}

// RenewLoan always succeeds: digital copies are renewable in any status.
func (d *DigitalContent) RenewLoan(_ *LibraryMember) bool {
	return true
}
