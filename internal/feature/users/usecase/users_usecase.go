// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cookcal_backend/internal/domain/apperr"
	authusecase "cookcal_backend/internal/feature/auth/usecase"
	"cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/imaging"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context, name string) ([]entity.User, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// RegisterInput は新規登録の入力です。全フィールド必須。
type RegisterInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Gender        int16
	Age           int16
	GoalWeight    float64
	Height        float64
	State         int16
	IsNutrAdviser bool
}

// UpdateInput は部分更新のパッチです。nilのフィールドは「指定なし」を意味し、
// 既存値を上書きしません。
type UpdateInput struct {
	GoalWeight    *float64
	Height        *float64
	State         *int16
	IsNutrAdviser *bool
}

// fields は指定されたフィールドだけをカラム名付きで返します。
func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.GoalWeight != nil {
		fields["goal_weight"] = *in.GoalWeight
	}
	if in.Height != nil {
		fields["height"] = *in.Height
	}
	if in.State != nil {
		fields["state"] = *in.State
	}
	if in.IsNutrAdviser != nil {
		fields["is_nutr_adviser"] = *in.IsNutrAdviser
	}
	return fields
}

// UsersUsecase はユーザー管理のビジネスロジックを提供します。
type UsersUsecase struct {
	users UserRepository
}

// NewUsersUsecase はUsersUsecaseの新しいインスタンスを生成します。
func NewUsersUsecase(users UserRepository) *UsersUsecase {
	return &UsersUsecase{users: users}
}

// Register はパスワードをハッシュ化して新規ユーザーを登録します。
func (u *UsersUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:         in.Email,
		Password:      string(digest),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Gender:        in.Gender,
		Age:           in.Age,
		GoalWeight:    in.GoalWeight,
		Height:        in.Height,
		State:         in.State,
		IsNutrAdviser: in.IsNutrAdviser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List は氏名フィルタでユーザーを検索します。空フィルタは全件です。
func (u *UsersUsecase) List(ctx context.Context, name string) ([]entity.User, error) {
	return u.users.List(ctx, name)
}

// Get はIDでユーザーを取得します。
func (u *UsersUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は本人のプロフィールに部分更新を適用し、正規の最新表現を返します。
// パイプラインは 取得(404) → 所有者確認(401) → マージ → 永続化 → 再取得 の順です。
func (u *UsersUsecase) Update(ctx context.Context, principal *entity.User, id uint, in UpdateInput) (*entity.User, error) {
	target, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authusecase.AuthorizeOwner(principal, target.ID); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, apperr.ErrNothingToUpdate
	}
	if err := u.users.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, id)
}

// Delete は本人のアカウントを所有データごと削除します。
func (u *UsersUsecase) Delete(ctx context.Context, principal *entity.User, id uint) error {
	target, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authusecase.AuthorizeOwner(principal, target.ID); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}

// SetPicture はプロフィール画像を検証・正規化して保存し、保存された
// バイト列を返します。保存されるのは常にバリデータの出力です。
func (u *UsersUsecase) SetPicture(ctx context.Context, principal *entity.User, id uint, data []byte) ([]byte, error) {
	target, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authusecase.AuthorizeOwner(principal, target.ID); err != nil {
		return nil, err
	}

	normalized, err := imaging.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := u.users.Update(ctx, id, map[string]any{"profile_picture": normalized}); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Picture は保存済みプロフィール画像を返します。未設定ならnilです。
func (u *UsersUsecase) Picture(ctx context.Context, id uint) ([]byte, error) {
	target, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return target.ProfilePicture, nil
}
