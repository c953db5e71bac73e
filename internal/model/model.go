package model

type ResourceStatus string

const (
	StatusAvailable ResourceStatus = "AVAILABLE"
	StatusBorrowed  ResourceStatus = "BORROWED"
	StatusReserved  ResourceStatus = "RESERVED"
)

type MembershipType string

const (
	MembershipStandard MembershipType = "STANDARD"
	MembershipPremium  MembershipType = "PREMIUM"
)

type ContentFormat string

const (
	FormatPDF  ContentFormat = "PDF"
	FormatEPUB ContentFormat = "EPUB"
)

type CreateMemberRequest struct {
	MemberID       string `json:"memberId"`
	MembershipType string `json:"membershipType" validate:"required,oneof=STANDARD PREMIUM"`
}

type CreateBookRequest struct {
	ResourceID string `json:"resourceId"`
	Title      string `json:"title" validate:"required"`
	Author     string `json:"author" validate:"required"`
	ISBN       string `json:"isbn" validate:"required"`
}

type CreateDigitalContentRequest struct {
	ResourceID string  `json:"resourceId"`
	Title      string  `json:"title" validate:"required"`
	FileSizeMB float64 `json:"fileSizeMb" validate:"required,gt=0"`
	Format     string  `json:"format" validate:"required,oneof=PDF EPUB"`
}

type CreatePeriodicalRequest struct {
	ResourceID  string `json:"resourceId"`
	Title       string `json:"title" validate:"required"`
	IssueNumber int    `json:"issueNumber" validate:"required,gt=0"`
	Frequency   string `json:"frequency" validate:"required"`
}
