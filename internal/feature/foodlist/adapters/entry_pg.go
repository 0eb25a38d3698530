// Package adapters はfoodlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/foodlist/domain/entity"
	"cookcal_backend/internal/feature/foodlist/usecase"
	"cookcal_backend/internal/platform/db"
)

// entryConstraintMessages はfoodlistテーブルの制約名をユーザー向けメッセージに対応付けます。
var entryConstraintMessages = db.ConstraintMessages{
	"positive_amount": "amount must be positive",
}

// entryPG はEntryRepositoryインターフェースのGORM実装です。
type entryPG struct {
	db *gorm.DB
}

// entryPGがEntryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EntryRepository = (*entryPG)(nil)

// NewEntryPG は指定されたgorm.DB接続でentryPGの新しいインスタンスを生成します。
func NewEntryPG(gdb *gorm.DB) *entryPG {
	return &entryPG{db: gdb}
}

// List は食品マスタと結合した食事記録の行を返します。from/toが与えられた
// ときは記録時刻の半開区間 [from, to) で絞り込みます。
func (r *entryPG) List(ctx context.Context, userID uint, from, to *time.Time) ([]usecase.EntryRow, error) {
	q := r.db.WithContext(ctx).
		Table("foodlist").
		Select("foodlist.id, food.title, food.kcal_100g, foodlist.amount, foodlist.time").
		Joins("JOIN food ON food.id = foodlist.id_food").
		Where("foodlist.id_user = ?", userID)
	if from != nil && to != nil {
		q = q.Where("foodlist.time >= ? AND foodlist.time < ?", *from, *to)
	}

	rows := []usecase.EntryRow{}
	if err := q.Order("foodlist.id").Scan(&rows).Error; err != nil {
		return nil, db.Translate(err, entryConstraintMessages)
	}
	return rows, nil
}

// FindByID はIDで食事記録を取得します。
func (r *entryPG) FindByID(ctx context.Context, id uint) (*entity.Entry, error) {
	var e entity.Entry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, db.Translate(err, entryConstraintMessages)
	}
	return &e, nil
}

// Create は食事記録を追加します。存在しない食品への参照は外部キー違反です。
func (r *entryPG) Create(ctx context.Context, e *entity.Entry) error {
	err := r.db.WithContext(ctx).Create(e).Error
	return db.Translate(err, entryConstraintMessages)
}

// Update は与えられたフィールドだけを適用します。
func (r *entryPG) Update(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Entry{}).
		Where("id = ?", id).
		Updates(fields).Error
	return db.Translate(err, entryConstraintMessages)
}

// Delete は食事記録を削除します。対象がなければNotFoundです。
func (r *entryPG) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Entry{})
	if res.Error != nil {
		return db.Translate(res.Error, entryConstraintMessages)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
