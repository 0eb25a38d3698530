package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/users/domain/entity"
)

type mockUserRepository struct {
	createFn      func(ctx context.Context, u *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id uint) (*entity.User, error)
	listFn        func(ctx context.Context, name string) ([]entity.User, error)
	updateFn      func(ctx context.Context, id uint, fields map[string]any) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.createFn(ctx, u)
}
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepository) List(ctx context.Context, name string) ([]entity.User, error) {
	return m.listFn(ctx, name)
}
func (m *mockUserRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return m.updateFn(ctx, id, fields)
}
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func owner(id uint) *entity.User {
	return &entity.User{ID: id, Email: "alice@example.com", FirstName: "Alice", LastName: "Smith"}
}

func TestUsersUsecase_Register_HashesPassword(t *testing.T) {
	var stored *entity.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, u *entity.User) error {
			u.ID = 1
			stored = u
			return nil
		},
	}
	uc := NewUsersUsecase(repo)

	user, err := uc.Register(context.Background(), RegisterInput{
		Email:     "alice@example.com",
		Password:  "secret",
		FirstName: "Alice",
		LastName:  "Smith",
		Gender:    1,
		Age:       30,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// 平文は保存されず、bcryptダイジェストが格納される
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")))
}

func TestUsersUsecase_Update(t *testing.T) {
	goal := 70.5

	tests := []struct {
		name       string
		principal  *entity.User
		in         UpdateInput
		wantErr    error
		wantFields map[string]any
	}{
		{
			name:       "正常: 指定フィールドだけが永続化される",
			principal:  owner(1),
			in:         UpdateInput{GoalWeight: &goal},
			wantFields: map[string]any{"goal_weight": 70.5},
		},
		{
			name:      "異常: 空パッチはErrNothingToUpdate",
			principal: owner(1),
			in:        UpdateInput{},
			wantErr:   apperr.ErrNothingToUpdate,
		},
		{
			name:      "異常: 他人による更新はErrForbidden",
			principal: owner(2),
			in:        UpdateInput{GoalWeight: &goal},
			wantErr:   apperr.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFields map[string]any
			repo := &mockUserRepository{
				findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
					return owner(1), nil
				},
				updateFn: func(_ context.Context, id uint, fields map[string]any) error {
					gotFields = fields
					return nil
				},
			}
			uc := NewUsersUsecase(repo)

			_, err := uc.Update(context.Background(), tt.principal, 1, tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gotFields)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFields, gotFields)
		})
	}
}

func TestUsersUsecase_Update_TargetMissing(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(context.Context, uint) (*entity.User, error) {
			return nil, apperr.ErrNotFound
		},
	}
	uc := NewUsersUsecase(repo)

	goal := 70.5
	_, err := uc.Update(context.Background(), owner(1), 99, UpdateInput{GoalWeight: &goal})

	// 存在確認は所有者確認より先
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUsersUsecase_Delete(t *testing.T) {
	deleted := false
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			return owner(1), nil
		},
		deleteFn: func(_ context.Context, id uint) error {
			deleted = true
			assert.Equal(t, uint(1), id)
			return nil
		},
	}
	uc := NewUsersUsecase(repo)

	require.NoError(t, uc.Delete(context.Background(), owner(1), 1))
	assert.True(t, deleted)

	err := uc.Delete(context.Background(), owner(2), 1)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{G: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUsersUsecase_SetPicture(t *testing.T) {
	data := smallPNG(t)

	var gotFields map[string]any
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			return owner(1), nil
		},
		updateFn: func(_ context.Context, id uint, fields map[string]any) error {
			gotFields = fields
			return nil
		},
	}
	uc := NewUsersUsecase(repo)

	stored, err := uc.SetPicture(context.Background(), owner(1), 1, data)
	require.NoError(t, err)
	// 規定内の画像はバイト列がそのまま保存される
	assert.Equal(t, data, stored)
	assert.Equal(t, map[string]any{"profile_picture": data}, gotFields)
}

func TestUsersUsecase_SetPicture_RejectsNonImage(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			return owner(1), nil
		},
	}
	uc := NewUsersUsecase(repo)

	_, err := uc.SetPicture(context.Background(), owner(1), 1, []byte("not an image"))
	assert.ErrorIs(t, err, apperr.ErrUnsupportedMedia)
}

func TestUsersUsecase_SetPicture_NotOwner(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			return owner(1), nil
		},
	}
	uc := NewUsersUsecase(repo)

	_, err := uc.SetPicture(context.Background(), owner(2), 1, smallPNG(t))
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUsersUsecase_Picture(t *testing.T) {
	pic := []byte{0x89, 'P', 'N', 'G'}
	repo := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uint) (*entity.User, error) {
			u := owner(1)
			if id == 1 {
				u.ProfilePicture = pic
			}
			return u, nil
		},
	}
	uc := NewUsersUsecase(repo)

	got, err := uc.Picture(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, pic, got)
}
