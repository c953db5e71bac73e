package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prekdu/library-lending/internal/errs"
	"github.com/prekdu/library-lending/internal/model"
)

func TestPeriodical_Reserve(t *testing.T) {
	t.Parallel()

	member := model.NewLibraryMember("m-1", model.MembershipStandard)

	t.Run("available periodical can be reserved directly", func(t *testing.T) {
		t.Parallel()
		p := model.NewPeriodical("p-1", "Wired", 312, "monthly")
		require.NoError(t, p.Reserve(member))
		require.Equal(t, model.StatusReserved, p.Status())
	})

	t.Run("reserving twice keeps it reserved", func(t *testing.T) {
		t.Parallel()
		p := model.NewPeriodical("p-1", "Wired", 312, "monthly")
		require.NoError(t, p.Reserve(member))
		require.NoError(t, p.Reserve(model.NewLibraryMember("m-2", model.MembershipPremium)))
		require.Equal(t, model.StatusReserved, p.Status())
	})

	t.Run("borrowed periodical cannot be reserved", func(t *testing.T) {
		t.Parallel()
		p := model.NewPeriodical("p-1", "Wired", 312, "monthly")
		borrower := model.NewLibraryMember("m-3", model.MembershipStandard)
		require.NoError(t, borrower.BorrowResource(p))
		err := p.Reserve(model.NewLibraryMember("m-2", model.MembershipPremium))
		require.ErrorIs(t, err, errs.ErrAlreadyBorrowed)
		require.Equal(t, model.StatusBorrowed, p.Status())
	})
}

func TestPeriodical_CancelReservation(t *testing.T) {
	t.Parallel()

	p := model.NewPeriodical("p-1", "National Geographic", 1044, "monthly")
	memberA := model.NewLibraryMember("m-a", model.MembershipStandard)
	memberB := model.NewLibraryMember("m-b", model.MembershipStandard)

	require.NoError(t, p.Reserve(memberA))
	require.Equal(t, model.StatusReserved, p.Status())

	// no ownership check: any member releases the reservation
	p.CancelReservation(memberB)
	require.Equal(t, model.StatusAvailable, p.Status())
}

func TestPeriodical_RenewLoan(t *testing.T) {
	t.Parallel()

	p := model.NewPeriodical("p-1", "Science", 6687, "weekly")
	member := model.NewLibraryMember("m-1", model.MembershipStandard)

	require.False(t, p.RenewLoan(member))
	require.NoError(t, member.BorrowResource(p))
	require.True(t, p.RenewLoan(member))
}
