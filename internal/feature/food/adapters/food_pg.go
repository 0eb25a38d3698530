// Package adapters はfoodフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/food/domain/entity"
	"cookcal_backend/internal/feature/food/usecase"
	foodlistentity "cookcal_backend/internal/feature/foodlist/domain/entity"
	"cookcal_backend/internal/platform/db"
)

// foodConstraintMessages はfoodテーブルの制約名をユーザー向けメッセージに対応付けます。
var foodConstraintMessages = db.ConstraintMessages{
	"food_title_minimum_characters": "food title must be at least 2 characters",
	"positive_kcal_100g_in_food":    "kcal per 100g must be positive",
}

// foodPG はFoodRepositoryインターフェースのGORM実装です。
type foodPG struct {
	db *gorm.DB
}

// foodPGがFoodRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FoodRepository = (*foodPG)(nil)

// NewFoodPG は指定されたgorm.DB接続でfoodPGの新しいインスタンスを生成します。
func NewFoodPG(gdb *gorm.DB) *foodPG {
	return &foodPG{db: gdb}
}

// Create は食品を追加します。
func (r *foodPG) Create(ctx context.Context, f *entity.Food) error {
	err := r.db.WithContext(ctx).Create(f).Error
	return db.Translate(err, foodConstraintMessages)
}

// FindByID はIDで食品を取得します。
func (r *foodPG) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, db.Translate(err, foodConstraintMessages)
	}
	return &f, nil
}

// List は名称の部分一致（大文字小文字を区別しない）で食品を検索します。
// フィルタが空のときは全件を返します。
func (r *foodPG) List(ctx context.Context, title string) ([]entity.Food, error) {
	q := r.db.WithContext(ctx).Model(&entity.Food{})
	if title != "" {
		pattern := "%" + strings.ToLower(title) + "%"
		q = q.Where("LOWER(title) LIKE ?", pattern)
	}

	var foods []entity.Food
	if err := q.Order("id").Find(&foods).Error; err != nil {
		return nil, db.Translate(err, foodConstraintMessages)
	}
	return foods, nil
}

// Delete は食品と、それを参照する食事記録を1トランザクションで削除します。
func (r *foodPG) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_food = ?", id).Delete(&foodlistentity.Entry{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entity.Food{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
	return db.Translate(err, foodConstraintMessages)
}
