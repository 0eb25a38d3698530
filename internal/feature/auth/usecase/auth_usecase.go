// Package usecase はauthフィーチャーのビジネスロジック（ログインと認可ガード）を実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/users/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID は指定されたIDに一致するユーザーを取得します。
	// センチネルID(0)は存在しないものとして扱います。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenService は署名付きベアラートークンの発行・検証を抽象化します。
type TokenService interface {
	// Issue は指定されたユーザーの署名済みトークンを生成します。
	Issue(userID uint) (string, error)
	// Verify はトークンを検証し、埋め込まれたユーザーIDを返します。
	Verify(token string) (uint, error)
}

// AuthUsecase はログインと認可ガードを提供します。
type AuthUsecase struct {
	users  UserRepository
	tokens TokenService
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// Login はメールアドレスとパスワードを検証し、成功時にアクセストークンを返します。
// ユーザー未検出・パスワード不一致のどちらもErrInvalidCredentialsに収束させます。
// タイミング攻撃を緩和するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザー未検出時のダミーハッシュ。bcrypt比較が常に実行されることを保証する。
	digest := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		digest = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))

	if err != nil || compareErr != nil {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Resolve はベアラートークンを行為主体（プリンシパル）に解決します。
// トークン検証の失敗、およびトークンは有効だがユーザーが既に削除されている場合の
// どちらもErrUnauthenticatedを返します。削除済みユーザーの古いトークンは、
// 有効期限内であっても機能してはなりません。
func (u *AuthUsecase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	id, err := u.tokens.Verify(token)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}
	return user, nil
}

// AuthorizeOwner はプリンシパルがリソースの所有者であることを確認します。
// 呼び出し側は対象リソースを取得した後、あらゆる変更の前にこれを呼びます。
func AuthorizeOwner(principal *entity.User, ownerID uint) error {
	if principal == nil || principal.ID != ownerID {
		return apperr.ErrForbidden
	}
	return nil
}
