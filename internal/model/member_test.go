package model_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prekdu/library-lending/internal/errs"
	"github.com/prekdu/library-lending/internal/model"
)

func TestLibraryMember_BorrowReturnRoundTrip(t *testing.T) {
	t.Parallel()

	member := model.NewLibraryMember("m-1", model.MembershipStandard)
	require.Empty(t, member.BorrowedResources())

	book := model.NewBook("b-1", "The Left Hand of Darkness", "Le Guin", "978-0441478125")

	require.NoError(t, member.BorrowResource(book))
	require.Equal(t, model.StatusBorrowed, book.Status())
	require.Len(t, member.BorrowedResources(), 1)
	require.Same(t, book, member.BorrowedResources()[0])

	member.ReturnResource(book)
	require.Equal(t, model.StatusAvailable, book.Status())
	require.Empty(t, member.BorrowedResources())
}

func TestLibraryMember_BorrowLimit(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name           string
		membershipType model.MembershipType
		limit          int
	}{
		{
			name:           "standard",
			membershipType: model.MembershipStandard,
			limit:          5,
		},
		{
			name:           "premium",
			membershipType: model.MembershipPremium,
			limit:          10,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			member := model.NewLibraryMember("m-1", tt.membershipType)
			for i := 0; i < tt.limit; i++ {
				book := model.NewBook(fmt.Sprintf("b-%d", i), "title", "author", "isbn")
				require.NoError(t, member.BorrowResource(book))
			}
			require.Len(t, member.BorrowedResources(), tt.limit)

			extra := model.NewBook("b-extra", "title", "author", "isbn")
			err := member.BorrowResource(extra)
			require.ErrorIs(t, err, errs.ErrLoanLimitExceeded)
			require.Equal(t, model.StatusAvailable, extra.Status())
			require.Len(t, member.BorrowedResources(), tt.limit)
		})
	}
}

func TestLibraryMember_BorrowUnavailable(t *testing.T) {
	t.Parallel()

	t.Run("reserved resource", func(t *testing.T) {
		t.Parallel()
		p := model.NewPeriodical("p-1", "Nature", 7934, "weekly")
		require.NoError(t, p.Reserve(model.NewLibraryMember("m-r", model.MembershipStandard)))

		member := model.NewLibraryMember("m-1", model.MembershipStandard)
		err := member.BorrowResource(p)
		require.ErrorIs(t, err, errs.ErrResourceNotAvailable)
		require.Contains(t, err.Error(), "reserved")
		require.Equal(t, model.StatusReserved, p.Status())
		require.Empty(t, member.BorrowedResources())
	})

	t.Run("borrowed resource", func(t *testing.T) {
		t.Parallel()
		book := model.NewBook("b-1", "Solaris", "Lem", "978-0156027601")
		first := model.NewLibraryMember("m-1", model.MembershipStandard)
		require.NoError(t, first.BorrowResource(book))

		second := model.NewLibraryMember("m-2", model.MembershipStandard)
		err := second.BorrowResource(book)
		require.ErrorIs(t, err, errs.ErrResourceNotAvailable)
		require.Equal(t, model.StatusBorrowed, book.Status())
		require.Empty(t, second.BorrowedResources())
	})
}

// Returning a resource the member never borrowed still forces it back to
// AVAILABLE, clobbering any pending reservation. Documented behavior.
func TestLibraryMember_ReturnNotBorrowed(t *testing.T) {
	t.Parallel()

	book := model.NewBook("b-1", "Roadside Picnic", "Strugatsky", "978-1613743416")
	owner := model.NewLibraryMember("m-o", model.MembershipStandard)
	require.NoError(t, owner.BorrowResource(book))
	require.NoError(t, book.Reserve(model.NewLibraryMember("m-r", model.MembershipStandard)))
	require.Equal(t, model.StatusReserved, book.Status())

	stranger := model.NewLibraryMember("m-s", model.MembershipStandard)
	stranger.ReturnResource(book)
	require.Equal(t, model.StatusAvailable, book.Status())
	// the owner still lists the book: only status was cleared
	require.Len(t, owner.BorrowedResources(), 1)
}

func TestLibraryMember_BorrowOrder(t *testing.T) {
	t.Parallel()

	member := model.NewLibraryMember("m-1", model.MembershipPremium)
	first := model.NewBook("b-1", "A", "a", "1")
	second := model.NewDigitalContent("d-1", "B", 2.0, model.FormatPDF)
	third := model.NewPeriodical("p-1", "C", 1, "weekly")

	require.NoError(t, member.BorrowResource(first))
	require.NoError(t, member.BorrowResource(second))
	require.NoError(t, member.BorrowResource(third))

	borrowed := member.BorrowedResources()
	require.Len(t, borrowed, 3)
	require.Equal(t, "b-1", borrowed[0].ResourceID())
	require.Equal(t, "d-1", borrowed[1].ResourceID())
	require.Equal(t, "p-1", borrowed[2].ResourceID())

	member.ReturnResource(second)
	borrowed = member.BorrowedResources()
	require.Len(t, borrowed, 2)
	require.Equal(t, "b-1", borrowed[0].ResourceID())
	require.Equal(t, "p-1", borrowed[1].ResourceID())
}

func TestDigitalContent_RenewLoan(t *testing.T) {
	t.Parallel()

	dc := model.NewDigitalContent("d-1", "Go in Practice", 8.4, model.FormatPDF)
	member := model.NewLibraryMember("m-1", model.MembershipStandard)

	// renewable in any status
	require.True(t, dc.RenewLoan(member))

	require.NoError(t, member.BorrowResource(dc))
	require.True(t, dc.RenewLoan(member))
}
