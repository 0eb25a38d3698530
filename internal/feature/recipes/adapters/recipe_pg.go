// Package adapters はrecipesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/recipes/domain/entity"
	"cookcal_backend/internal/feature/recipes/usecase"
	"cookcal_backend/internal/platform/db"
)

// recipeConstraintMessages はrecipesテーブルの制約名をユーザー向けメッセージに対応付けます。
var recipeConstraintMessages = db.ConstraintMessages{
	"recipe_title_minimum_characters": "recipe title must be at least 2 characters",
	"zero_or_positive_kcal_100g":      "kcal per 100g must not be negative",
}

// recipePG はRecipeRepositoryインターフェースのGORM実装です。
type recipePG struct {
	db *gorm.DB
}

// recipePGがRecipeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecipeRepository = (*recipePG)(nil)

// NewRecipePG は指定されたgorm.DB接続でrecipePGの新しいインスタンスを生成します。
func NewRecipePG(gdb *gorm.DB) *recipePG {
	return &recipePG{db: gdb}
}

// Create はレシピを追加します。
func (r *recipePG) Create(ctx context.Context, rec *entity.Recipe) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	return db.Translate(err, recipeConstraintMessages)
}

// FindByID はIDでレシピを取得します。
func (r *recipePG) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var rec entity.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, db.Translate(err, recipeConstraintMessages)
	}
	return &rec, nil
}

// List はタイトルの部分一致（大文字小文字を区別しない）でレシピを検索します。
// レシピは全ユーザーに公開の共有データで、所有者では絞り込みません。
func (r *recipePG) List(ctx context.Context, title string) ([]entity.Recipe, error) {
	q := r.db.WithContext(ctx).Model(&entity.Recipe{})
	if title != "" {
		pattern := "%" + strings.ToLower(title) + "%"
		q = q.Where("LOWER(title) LIKE ?", pattern)
	}

	var recipes []entity.Recipe
	if err := q.Order("id").Find(&recipes).Error; err != nil {
		return nil, db.Translate(err, recipeConstraintMessages)
	}
	return recipes, nil
}

// Update は与えられたフィールドだけを適用します。
func (r *recipePG) Update(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Recipe{}).
		Where("id = ?", id).
		Updates(fields).Error
	return db.Translate(err, recipeConstraintMessages)
}

// Delete はレシピを削除します。対象がなければNotFoundです。
func (r *recipePG) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Recipe{})
	if res.Error != nil {
		return db.Translate(res.Error, recipeConstraintMessages)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
