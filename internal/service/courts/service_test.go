package courts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCourtRepo struct {
	court *domain.Court
	list  []*domain.Court
	err   error

	listOnlyAvailable *bool
	created           *domain.Court
	updated           *domain.Court
}

func (r *fakeCourtRepo) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	court.ID = 1
	r.created = court
	return court, nil
}

func (r *fakeCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.court, nil
}

func (r *fakeCourtRepo) List(ctx context.Context, onlyAvailable bool) ([]*domain.Court, error) {
	r.listOnlyAvailable = &onlyAvailable
	return r.list, nil
}

func (r *fakeCourtRepo) Update(ctx context.Context, court *domain.Court) error {
	r.updated = court
	return nil
}

func storedCourt() *domain.Court {
	return &domain.Court{
		ID:          1,
		Name:        "Корт 1",
		Description: "Крытый корт с покрытием хард",
		IsIndoor:    true,
		HourlyRate:  50,
		IsAvailable: true,
	}
}

func TestList(t *testing.T) {
	repo := &fakeCourtRepo{list: []*domain.Court{storedCourt()}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Courts, 1)

	require.NotNil(t, repo.listOnlyAvailable)
	assert.True(t, *repo.listOnlyAvailable)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &fakeCourtRepo{err: courtRepo.ErrCourtNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestCreate(t *testing.T) {
	repo := &fakeCourtRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCourtRequest{
		Name:       "Корт 2",
		IsIndoor:   false,
		HourlyRate: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	// Корт по умолчанию открыт для бронирования
	assert.True(t, resp.IsAvailable)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.IsAvailable)
}

func TestCreateExplicitlyUnavailable(t *testing.T) {
	repo := &fakeCourtRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateCourtRequest{
		Name:        "Корт 3",
		HourlyRate:  40,
		IsAvailable: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeCourtRepo{}, nopLogger{})

	cases := []struct {
		name string
		req  *models.CreateCourtRequest
	}{
		{"empty name", &models.CreateCourtRequest{Name: "", HourlyRate: 40}},
		{"name too long", &models.CreateCourtRequest{Name: strings.Repeat("a", domain.MaxCourtNameLength+1), HourlyRate: 40}},
		{"description too long", &models.CreateCourtRequest{Name: "Корт", Description: strings.Repeat("a", domain.MaxCourtDescriptionLength+1), HourlyRate: 40}},
		{"negative rate", &models.CreateCourtRequest{Name: "Корт", HourlyRate: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdatePartialFields(t *testing.T) {
	repo := &fakeCourtRepo{court: storedCourt()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{
		HourlyRate:  ptr.Ptr(60.0),
		IsAvailable: ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Непереданные поля и тип покрытия не меняются
	assert.Equal(t, "Корт 1", resp.Name)
	assert.True(t, resp.IsIndoor)
	assert.Equal(t, 60.0, resp.HourlyRate)
	assert.False(t, resp.IsAvailable)

	require.NotNil(t, repo.updated)
	assert.Equal(t, 60.0, repo.updated.HourlyRate)
}

func TestUpdateNotFound(t *testing.T) {
	repo := &fakeCourtRepo{err: courtRepo.ErrCourtNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateCourtRequest{Name: ptr.Ptr("Корт")})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUpdateValidation(t *testing.T) {
	repo := &fakeCourtRepo{court: storedCourt()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateCourtRequest{Name: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), 1, &models.UpdateCourtRequest{HourlyRate: ptr.Ptr(-5.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Nil(t, repo.updated)
}
