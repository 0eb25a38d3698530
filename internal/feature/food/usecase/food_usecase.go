// Package usecase はfoodフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/food/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
)

// FoodRepository は食品エンティティの永続化層を抽象化します。
type FoodRepository interface {
	Create(ctx context.Context, f *entity.Food) error
	FindByID(ctx context.Context, id uint) (*entity.Food, error)
	List(ctx context.Context, title string) ([]entity.Food, error)
	Delete(ctx context.Context, id uint) error
}

// CreateInput は食品登録の入力です。
type CreateInput struct {
	Title    string
	Kcal100g float64
}

// FoodUsecase は食品参照データのビジネスロジックを提供します。
// 食品は共有の参照データであり、作成と削除のみで更新はありません。
type FoodUsecase struct {
	foods FoodRepository
}

// NewFoodUsecase はFoodUsecaseの新しいインスタンスを生成します。
func NewFoodUsecase(foods FoodRepository) *FoodUsecase {
	return &FoodUsecase{foods: foods}
}

// List は名称フィルタで食品を検索します。空フィルタは全件です。
func (u *FoodUsecase) List(ctx context.Context, title string) ([]entity.Food, error) {
	return u.foods.List(ctx, title)
}

// Get はIDで食品を取得します。
func (u *FoodUsecase) Get(ctx context.Context, id uint) (*entity.Food, error) {
	return u.foods.FindByID(ctx, id)
}

// Create は食品を参照データに追加します。
func (u *FoodUsecase) Create(ctx context.Context, in CreateInput) (*entity.Food, error) {
	food := &entity.Food{Title: in.Title, Kcal100g: in.Kcal100g}
	if err := u.foods.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// Delete は食品を参照データから取り除きます。共有データのため
// 栄養アドバイザーだけが実行できます。
func (u *FoodUsecase) Delete(ctx context.Context, principal *userentity.User, id uint) error {
	if principal == nil || !principal.IsNutrAdviser {
		return apperr.ErrForbidden
	}
	if _, err := u.foods.FindByID(ctx, id); err != nil {
		return err
	}
	return u.foods.Delete(ctx, id)
}
