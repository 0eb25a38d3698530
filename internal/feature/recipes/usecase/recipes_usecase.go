// Package usecase はrecipesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"cookcal_backend/internal/domain/apperr"
	authusecase "cookcal_backend/internal/feature/auth/usecase"
	"cookcal_backend/internal/feature/recipes/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/imaging"
)

// RecipeRepository はレシピエンティティの永続化層を抽象化します。
type RecipeRepository interface {
	Create(ctx context.Context, r *entity.Recipe) error
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)
	List(ctx context.Context, title string) ([]entity.Recipe, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// CreateInput はレシピ作成の入力です。所有者は認証済みユーザーになります。
type CreateInput struct {
	Title        string
	Ingredients  string
	Instructions string
	Kcal100g     float64
}

// UpdateInput はレシピの部分更新パッチです。
type UpdateInput struct {
	Title        *string
	Ingredients  *string
	Instructions *string
	Kcal100g     *float64
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Ingredients != nil {
		fields["ingredients"] = *in.Ingredients
	}
	if in.Instructions != nil {
		fields["instructions"] = *in.Instructions
	}
	if in.Kcal100g != nil {
		fields["kcal_100g"] = *in.Kcal100g
	}
	return fields
}

// RecipesUsecase はレシピのビジネスロジックを提供します。
// 閲覧は全ユーザーに公開、変更は所有者に限定されます。
type RecipesUsecase struct {
	recipes RecipeRepository
}

// NewRecipesUsecase はRecipesUsecaseの新しいインスタンスを生成します。
func NewRecipesUsecase(recipes RecipeRepository) *RecipesUsecase {
	return &RecipesUsecase{recipes: recipes}
}

// List はタイトルフィルタでレシピを検索します。空フィルタは全件です。
func (u *RecipesUsecase) List(ctx context.Context, title string) ([]entity.Recipe, error) {
	return u.recipes.List(ctx, title)
}

// Get はIDでレシピを取得します。
func (u *RecipesUsecase) Get(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.recipes.FindByID(ctx, id)
}

// Create は認証済みユーザーを所有者としてレシピを作成します。
func (u *RecipesUsecase) Create(ctx context.Context, principal *userentity.User, in CreateInput) (*entity.Recipe, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthenticated
	}
	recipe := &entity.Recipe{
		UserID:       principal.ID,
		Title:        in.Title,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		Kcal100g:     in.Kcal100g,
	}
	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update は所有者のレシピに部分更新を適用し、最新のレシピを返します。
func (u *RecipesUsecase) Update(ctx context.Context, principal *userentity.User, id uint, in UpdateInput) (*entity.Recipe, error) {
	target, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authusecase.AuthorizeOwner(principal, target.UserID); err != nil {
		return nil, err
	}

	fields := in.fields()
	if len(fields) == 0 {
		return nil, apperr.ErrNothingToUpdate
	}
	if err := u.recipes.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return u.recipes.FindByID(ctx, id)
}

// Delete は所有者のレシピを削除します。
func (u *RecipesUsecase) Delete(ctx context.Context, principal *userentity.User, id uint) error {
	target, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authusecase.AuthorizeOwner(principal, target.UserID); err != nil {
		return err
	}
	return u.recipes.Delete(ctx, id)
}

// SetPicture はレシピ画像を検証・正規化して保存し、保存されたバイト列を返します。
func (u *RecipesUsecase) SetPicture(ctx context.Context, principal *userentity.User, id uint, data []byte) ([]byte, error) {
	target, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authusecase.AuthorizeOwner(principal, target.UserID); err != nil {
		return nil, err
	}

	normalized, err := imaging.Normalize(data)
	if err != nil {
		return nil, err
	}
	if err := u.recipes.Update(ctx, id, map[string]any{"recipe_picture": normalized}); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Picture は保存済みレシピ画像を返します。未設定ならnilです。
func (u *RecipesUsecase) Picture(ctx context.Context, id uint) ([]byte, error) {
	target, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return target.RecipePicture, nil
}
