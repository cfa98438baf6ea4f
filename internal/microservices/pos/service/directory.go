package service

import (
	"context"

	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/pos/repository"
)

type DirectoryServiceInterface interface {
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	ListBranches(ctx context.Context, tenantID string) ([]domain.Branch, error)
	ResolveBranch(ctx context.Context, branchID string) (domain.Branch, error)
}

type DirectoryService struct {
	directory repository.DirectoryRepositoryInterface
}

func NewDirectoryService(directory repository.DirectoryRepositoryInterface) DirectoryServiceInterface {
	return &DirectoryService{directory: directory}
}

func (s *DirectoryService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.directory.ListTenants(ctx)
}

func (s *DirectoryService) ListBranches(ctx context.Context, tenantID string) ([]domain.Branch, error) {
	if tenantID == "" {
		return nil, domain.ErrMissingContext
	}
	return s.directory.ListBranches(ctx, tenantID)
}

// ResolveBranch validates the branch identifier the request carries; an
// unknown or empty id is a missing-context failure, not a 404.
func (s *DirectoryService) ResolveBranch(ctx context.Context, branchID string) (domain.Branch, error) {
	if branchID == "" {
		return domain.Branch{}, domain.ErrMissingContext
	}
	return s.directory.GetBranch(ctx, branchID)
}
