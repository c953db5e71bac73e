package repository

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prekdu/library-lending/internal/errs"
	"github.com/prekdu/library-lending/internal/model"
)

// Repository is an in-memory catalog of resources and members keyed by id.
// It does no locking of its own: per the domain contract all operations are
// synchronous single-threaded calls, and a hosting application exposing them
// to concurrent callers must serialize access itself.
type Repository interface {
	AddResource(r model.LibraryResource) error
	GetResource(resourceID string) (model.LibraryResource, error)
	ListResources() []model.LibraryResource
	AddMember(m *model.LibraryMember) error
	GetMember(memberID string) (*model.LibraryMember, error)
	ListMembers() []*model.LibraryMember
}

type repository struct {
	log *zap.Logger

	resources   map[string]model.LibraryResource
	resourceIDs []string
	members     map[string]*model.LibraryMember
	memberIDs   []string
}

func NewRepository(log *zap.Logger) *repository {
	return &repository{
		log:       log.Named("repo"),
		resources: make(map[string]model.LibraryResource),
		members:   make(map[string]*model.LibraryMember),
	}
}

func (r *repository) AddResource(res model.LibraryResource) error {
	id := res.ResourceID()
	if _, ok := r.resources[id]; ok {
		return errors.Wrapf(errs.ErrAlreadyExists, "resource %q", id)
	}
	r.resources[id] = res
	r.resourceIDs = append(r.resourceIDs, id)
	r.log.Debug("resource added", zap.String("resourceId", id), zap.String("title", res.Title()))
	return nil
}

func (r *repository) GetResource(resourceID string) (model.LibraryResource, error) {
	res, ok := r.resources[resourceID]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "resource %q", resourceID)
	}
	return res, nil
}

// ListResources returns resources in registration order.
func (r *repository) ListResources() []model.LibraryResource {
	out := make([]model.LibraryResource, 0, len(r.resourceIDs))
	for _, id := range r.resourceIDs {
		out = append(out, r.resources[id])
	}
	return out
}

func (r *repository) AddMember(m *model.LibraryMember) error {
	id := m.MemberID()
	if _, ok := r.members[id]; ok {
		return errors.Wrapf(errs.ErrAlreadyExists, "member %q", id)
	}
	r.members[id] = m
	r.memberIDs = append(r.memberIDs, id)
	r.log.Debug("member added", zap.String("memberId", id))
	return nil
}

func (r *repository) GetMember(memberID string) (*model.LibraryMember, error) {
	m, ok := r.members[memberID]
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "member %q", memberID)
	}
	return m, nil
}

// ListMembers returns members in registration order.
func (r *repository) ListMembers() []*model.LibraryMember {
	out := make([]*model.LibraryMember, 0, len(r.memberIDs))
	for _, id := range r.memberIDs {
		out = append(out, r.members[id])
	}
	return out
}
