package app

import (
	"go.uber.org/zap"

	"github.com/prekdu/library-lending/config"
	"github.com/prekdu/library-lending/internal/model"
	"github.com/prekdu/library-lending/internal/repository"
	"github.com/prekdu/library-lending/internal/service"
	"github.com/prekdu/library-lending/pkg/logger"
)

// Run wires the catalog and lending service and walks through a lending
// scenario. The core has no network or storage surface; this binary exists
// to exercise the in-process API end to end.
func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	repo := repository.NewRepository(log)
	svc := service.NewService(repo, log)

	if err := walkthrough(svc, log); err != nil {
		log.Fatal("walkthrough", zap.Error(err))
	}
}

func walkthrough(svc *service.Service, log *zap.Logger) error {
	alice, err := svc.RegisterMember(model.CreateMemberRequest{MembershipType: "STANDARD"})
	if err != nil {
		return err
	}
	bob, err := svc.RegisterMember(model.CreateMemberRequest{MembershipType: "PREMIUM"})
	if err != nil {
		return err
	}

	book, err := svc.AddBook(model.CreateBookRequest{
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		ISBN:   "978-0134190440",
	})
	if err != nil {
		return err
	}
	epub, err := svc.AddDigitalContent(model.CreateDigitalContentRequest{
		Title:      "Concurrency in Go",
		FileSizeMB: 4.8,
		Format:     "EPUB",
	})
	if err != nil {
		return err
	}
	journal, err := svc.AddPeriodical(model.CreatePeriodicalRequest{
		Title:       "Communications of the ACM",
		IssueNumber: 67,
		Frequency:   "monthly",
	})
	if err != nil {
		return err
	}

	if err = svc.Borrow(alice.MemberID(), book.ResourceID()); err != nil {
		return err
	}
	// bob queues behind alice for the borrowed book
	if err = svc.Reserve(bob.MemberID(), book.ResourceID()); err != nil {
		return err
	}
	if _, err = svc.RenewLoan(alice.MemberID(), epub.ResourceID()); err != nil {
		return err
	}
	if err = svc.Borrow(bob.MemberID(), journal.ResourceID()); err != nil {
		return err
	}

	log.Info("late fee after a week overdue",
		zap.String("resourceId", book.ResourceID()),
		zap.Float64("fee", book.CalculateLateFee(7)),
		zap.Int("maxLoanDays", book.MaxLoanPeriod()))

	if err = svc.Return(alice.MemberID(), book.ResourceID()); err != nil {
		return err
	}
	if err = svc.Return(bob.MemberID(), journal.ResourceID()); err != nil {
		return err
	}

	return nil
}
