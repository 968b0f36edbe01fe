package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
)

type fakeRepo struct {
	staff      map[int64]*model.Staff
	identities map[int64]bool // staff_id -> users row exists
	emails     map[string]bool
	nextID     int64

	updated          map[int64]*dto.UpdateProfileInput
	identityEmailSet map[int64]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		staff:            map[int64]*model.Staff{},
		identities:       map[int64]bool{},
		emails:           map[string]bool{},
		nextID:           1,
		updated:          map[int64]*dto.UpdateProfileInput{},
		identityEmailSet: map[int64]string{},
	}
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]model.Staff, error) {
	out := []model.Staff{}
	for _, s := range r.staff {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, staffID int64) (*model.Staff, error) {
	return r.staff[staffID], nil
}

func (r *fakeRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.emails[email], nil
}

func (r *fakeRepo) CreateWithIdentity(ctx context.Context, s *model.Staff) (int64, error) {
	id := r.nextID
	r.nextID++
	s.StaffID = id
	r.staff[id] = s
	r.identities[id] = true
	r.emails[s.Email] = true
	return id, nil
}

func (r *fakeRepo) Delete(ctx context.Context, staffID int64) error {
	delete(r.staff, staffID)
	// Cascade removes the linked identity.
	delete(r.identities, staffID)
	return nil
}

func (r *fakeRepo) DeleteWithIdentity(ctx context.Context, staffID int64) error {
	delete(r.identities, staffID)
	delete(r.staff, staffID)
	return nil
}

func (r *fakeRepo) UpdateProfile(ctx context.Context, staffID int64, input *dto.UpdateProfileInput) error {
	r.updated[staffID] = input
	if input.Email != nil {
		r.identityEmailSet[staffID] = *input.Email
	}
	return nil
}

func validInput() *dto.CreateStaffInput {
	return &dto.CreateStaffInput{
		UserName: "alice",
		Email:    "a@x.com",
		Password: "pw123",
		Role:     "Level01",
	}
}

func TestCreateStaff_Succeeds(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	created := repo.staff[id]
	require.NotNil(t, created)
	assert.True(t, repo.identities[id], "auth identity must be created with the staff row")

	// Stored credential is a salted hash of the supplied password.
	assert.NotEqual(t, "pw123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw123")))
}

func TestCreateStaff_MissingFields(t *testing.T) {
	uc := NewStaffUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.CreateStaff(context.Background(), &dto.CreateStaffInput{Email: "a@x.com"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))

	fields := apperror.FieldsOf(err)
	assert.Contains(t, fields, "userName")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
	assert.NotContains(t, fields, "email")
}

func TestCreateStaff_InvalidRole(t *testing.T) {
	uc := NewStaffUseCase(newFakeRepo(), zap.NewNop())

	input := validInput()
	input.Role = "SuperAdmin"
	_, err := uc.CreateStaff(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestCreateStaff_EmailConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	_, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	second := &dto.CreateStaffInput{
		UserName: "bob",
		Email:    "a@x.com",
		Password: "pw456",
		Role:     "Level02",
	}
	_, err = uc.CreateStaff(context.Background(), second)
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Len(t, repo.staff, 1)
}

func TestDeleteStaff_SelfForbidden(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	err = uc.DeleteStaff(context.Background(), id, id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidOperation, apperror.KindOf(err))
	assert.Contains(t, repo.staff, id)
}

func TestDeleteStaff_NotFound(t *testing.T) {
	uc := NewStaffUseCase(newFakeRepo(), zap.NewNop())

	err := uc.DeleteStaff(context.Background(), 99, 1)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDeleteStaff_RemovesIdentity(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteStaff(context.Background(), id, id+1000))
	assert.NotContains(t, repo.staff, id)
	assert.NotContains(t, repo.identities, id)
}

func TestDeleteOwnAccount_WrongPassword(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	err = uc.DeleteOwnAccount(context.Background(), id, "wrong")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	assert.Contains(t, repo.staff, id)
}

func TestDeleteOwnAccount_Succeeds(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteOwnAccount(context.Background(), id, "pw123"))
	assert.NotContains(t, repo.staff, id)
	assert.NotContains(t, repo.identities, id)
}

func TestDeleteOwnAccount_MissingPassword(t *testing.T) {
	uc := NewStaffUseCase(newFakeRepo(), zap.NewNop())

	err := uc.DeleteOwnAccount(context.Background(), 1, "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestUpdateProfile_NoFields(t *testing.T) {
	uc := NewStaffUseCase(newFakeRepo(), zap.NewNop())

	err := uc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileInput{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestUpdateProfile_EmailSyncsIdentity(t *testing.T) {
	repo := newFakeRepo()
	uc := NewStaffUseCase(repo, zap.NewNop())

	id, err := uc.CreateStaff(context.Background(), validInput())
	require.NoError(t, err)

	email := "new@x.com"
	require.NoError(t, uc.UpdateProfile(context.Background(), id, &dto.UpdateProfileInput{Email: &email}))
	assert.Equal(t, "new@x.com", repo.identityEmailSet[id])
}
