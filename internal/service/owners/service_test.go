package owners

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	ownerRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/owner"
	"github.com/m04kA/SVP-BookingService/internal/service/owners/models"
)

type fakeOwnerRepo struct {
	owners map[int64]*domain.Owner
}

func newFakeOwnerRepo(owners ...*domain.Owner) *fakeOwnerRepo {
	byID := make(map[int64]*domain.Owner, len(owners))
	for _, o := range owners {
		byID[o.ID] = o
	}
	return &fakeOwnerRepo{owners: byID}
}

func (f *fakeOwnerRepo) Create(_ context.Context, o *domain.Owner) (*domain.Owner, error) {
	created := *o
	created.ID = int64(len(f.owners) + 1)
	f.owners[created.ID] = &created
	return &created, nil
}

func (f *fakeOwnerRepo) GetByID(_ context.Context, id int64) (*domain.Owner, error) {
	o, ok := f.owners[id]
	if !ok {
		return nil, ownerRepo.ErrOwnerNotFound
	}
	return o, nil
}

func (f *fakeOwnerRepo) List(_ context.Context, status *domain.OwnerStatus) ([]*domain.Owner, error) {
	result := make([]*domain.Owner, 0, len(f.owners))
	for _, o := range f.owners {
		if status == nil || o.Status == *status {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOwnerRepo) UpdateStatus(_ context.Context, id int64, status domain.OwnerStatus) error {
	o, ok := f.owners[id]
	if !ok {
		return ownerRepo.ErrOwnerNotFound
	}
	o.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRegister_CreatesPending(t *testing.T) {
	repo := newFakeOwnerRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterOwnerRequest{
		Name:  "Абдулла",
		Email: "abdullah@example.com",
		Phone: "+966501234567",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.OwnerStatusPending), resp.Status)
	require.Len(t, repo.owners, 1)
	assert.Equal(t, domain.OwnerStatusPending, repo.owners[1].Status)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.RegisterOwnerRequest
	}{
		{
			name: "empty name",
			req:  &models.RegisterOwnerRequest{Name: " ", Email: "a@b.com", Phone: "+966"},
		},
		{
			name: "empty email",
			req:  &models.RegisterOwnerRequest{Name: "Абдулла", Email: "", Phone: "+966"},
		},
		{
			name: "email without at sign",
			req:  &models.RegisterOwnerRequest{Name: "Абдулла", Email: "abdullah.example.com", Phone: "+966"},
		},
		{
			name: "empty phone",
			req:  &models.RegisterOwnerRequest{Name: "Абдулла", Email: "a@b.com", Phone: "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeOwnerRepo(), nopLogger{})

			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestApprove_Success(t *testing.T) {
	repo := newFakeOwnerRepo(&domain.Owner{ID: 1, Name: "Абдулла", Status: domain.OwnerStatusPending})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Approve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.OwnerStatusApproved), resp.Status)
	assert.Equal(t, domain.OwnerStatusApproved, repo.owners[1].Status)
}

func TestApprove_AlreadyApproved(t *testing.T) {
	repo := newFakeOwnerRepo(&domain.Owner{ID: 1, Status: domain.OwnerStatusApproved})
	svc := NewService(repo, nopLogger{})

	_, err := svc.Approve(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyApproved)
}

func TestApprove_NotFound(t *testing.T) {
	svc := NewService(newFakeOwnerRepo(), nopLogger{})

	_, err := svc.Approve(context.Background(), 99)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestList_FilterByStatus(t *testing.T) {
	repo := newFakeOwnerRepo(
		&domain.Owner{ID: 1, Name: "Абдулла", Status: domain.OwnerStatusPending},
		&domain.Owner{ID: 2, Name: "Салем", Status: domain.OwnerStatusApproved},
	)
	svc := NewService(repo, nopLogger{})

	status := "pending"
	resp, err := svc.List(context.Background(), &status)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Абдулла", resp.Owners[0].Name)
}

func TestList_UnknownStatus(t *testing.T) {
	svc := NewService(newFakeOwnerRepo(), nopLogger{})

	status := "rejected"
	_, err := svc.List(context.Background(), &status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
