package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prekdu/library-lending/internal/errs"
	"github.com/prekdu/library-lending/internal/model"
	"github.com/prekdu/library-lending/pkg/validate"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocks

// Catalog resolves ids to entities. The in-memory implementation lives in
// internal/repository.
type Catalog interface {
	AddResource(r model.LibraryResource) error
	GetResource(resourceID string) (model.LibraryResource, error)
	ListResources() []model.LibraryResource
	AddMember(m *model.LibraryMember) error
	GetMember(memberID string) (*model.LibraryMember, error)
	ListMembers() []*model.LibraryMember
}

// Service exposes the lending operations by id. All transition rules live on
// the model types; the service only resolves ids, validates input and logs.
type Service struct {
	log      *zap.Logger
	catalog  Catalog
	validate *validate.CustomValidator
}

func NewService(catalog Catalog, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		catalog:  catalog,
		validate: validate.NewCustomValidator(),
	}
}

func (s *Service) RegisterMember(req model.CreateMemberRequest) (*model.LibraryMember, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, errors.Wrap(errs.ErrInvalidMembership, err.Error())
	}
	if req.MemberID == "" {
		req.MemberID = uuid.NewString()
	}
	member := model.NewLibraryMember(req.MemberID, model.MembershipType(req.MembershipType))
	if err := s.catalog.AddMember(member); err != nil {
		return nil, err
	}
	s.log.Info("member registered",
		zap.String("memberId", member.MemberID()),
		zap.String("membershipType", string(member.MembershipType())))
	return member, nil
}

func (s *Service) AddBook(req model.CreateBookRequest) (*model.Book, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}
	if req.ResourceID == "" {
		req.ResourceID = uuid.NewString()
	}
	book := model.NewBook(req.ResourceID, req.Title, req.Author, req.ISBN)
	if err := s.catalog.AddResource(book); err != nil {
		return nil, err
	}
	s.log.Info("book added", zap.String("resourceId", book.ResourceID()), zap.String("title", book.Title()))
	return book, nil
}

func (s *Service) AddDigitalContent(req model.CreateDigitalContentRequest) (*model.DigitalContent, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}
	if req.ResourceID == "" {
		req.ResourceID = uuid.NewString()
	}
	dc := model.NewDigitalContent(req.ResourceID, req.Title, req.FileSizeMB, model.ContentFormat(req.Format))
	if err := s.catalog.AddResource(dc); err != nil {
		return nil, err
	}
	s.log.Info("digital content added", zap.String("resourceId", dc.ResourceID()), zap.String("title", dc.Title()))
	return dc, nil
}

func (s *Service) AddPeriodical(req model.CreatePeriodicalRequest) (*model.Periodical, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}
	if req.ResourceID == "" {
		req.ResourceID = uuid.NewString()
	}
	p := model.NewPeriodical(req.ResourceID, req.Title, req.IssueNumber, req.Frequency)
	if err := s.catalog.AddResource(p); err != nil {
		return nil, err
	}
	s.log.Info("periodical added", zap.String("resourceId", p.ResourceID()), zap.String("title", p.Title()))
	return p, nil
}

func (s *Service) Borrow(memberID, resourceID string) error {
	member, err := s.catalog.GetMember(memberID)
	if err != nil {
		return err
	}
	res, err := s.catalog.GetResource(resourceID)
	if err != nil {
		return err
	}
	if err := member.BorrowResource(res); err != nil {
		s.log.Warn("borrow rejected",
			zap.String("memberId", memberID),
			zap.String("resourceId", resourceID),
			zap.Error(err))
		return err
	}
	s.log.Info("resource borrowed",
		zap.String("memberId", memberID),
		zap.String("resourceId", resourceID))
	return nil
}

func (s *Service) Return(memberID, resourceID string) error {
	member, err := s.catalog.GetMember(memberID)
	if err != nil {
		return err
	}
	res, err := s.catalog.GetResource(resourceID)
	if err != nil {
		return err
	}
	member.ReturnResource(res)
	s.log.Info("resource returned",
		zap.String("memberId", memberID),
		zap.String("resourceId", resourceID))
	return nil
}

func (s *Service) Reserve(memberID, resourceID string) error {
	member, err := s.catalog.GetMember(memberID)
	if err != nil {
		return err
	}
	res, err := s.catalog.GetResource(resourceID)
	if err != nil {
		return err
	}
	reservable, ok := res.(model.Reservable)
	if !ok {
		return errors.Wrapf(errs.ErrNotReservable, "resource %q", resourceID)
	}
	if err := reservable.Reserve(member); err != nil {
		s.log.Warn("reserve rejected",
			zap.String("memberId", memberID),
			zap.String("resourceId", resourceID),
			zap.Error(err))
		return err
	}
	s.log.Info("resource reserved",
		zap.String("memberId", memberID),
		zap.String("resourceId", resourceID))
	return nil
}

func (s *Service) CancelReservation(memberID, resourceID string) error {
	member, err := s.catalog.GetMember(memberID)
	if err != nil {
		return err
	}
	res, err := s.catalog.GetResource(resourceID)
	if err != nil {
		return err
	}
	reservable, ok := res.(model.Reservable)
	if !ok {
		return errors.Wrapf(errs.ErrNotReservable, "resource %q", resourceID)
	}
	reservable.CancelReservation(member)
	s.log.Info("reservation canceled",
		zap.String("memberId", memberID),
		zap.String("resourceId", resourceID))
	return nil
}

func (s *Service) RenewLoan(memberID, resourceID string) (bool, error) {
	member, err := s.catalog.GetMember(memberID)
	if err != nil {
		return false, err
	}
	res, err := s.catalog.GetResource(resourceID)
	if err != nil {
		return false, err
	}
	renewable, ok := res.(model.Renewable)
	if !ok {
		return false, errors.Wrapf(errs.ErrNotRenewable, "resource %q", resourceID)
	}
	renewed := renewable.RenewLoan(member)
	s.log.Info("loan renewal checked",
		zap.String("memberId", memberID),
		zap.String("resourceId", resourceID),
		zap.Bool("renewed", renewed))
	return renewed, nil
}

func (s *Service) GetResource(resourceID string) (model.LibraryResource, error) {
	return s.catalog.GetResource(resourceID)
}

func (s *Service) GetMember(memberID string) (*model.LibraryMember, error) {
	return s.catalog.GetMember(memberID)
}
