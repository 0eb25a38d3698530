// Package adapters はweightsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/feature/weights/usecase"
	"cookcal_backend/internal/platform/db"
)

// measurementConstraintMessages はweightmeasurementsテーブルの制約名を
// ユーザー向けメッセージに対応付けます。
var measurementConstraintMessages = db.ConstraintMessages{
	"positive_weight": "weight must be positive",
}

// measurementPG はMeasurementRepositoryインターフェースのGORM実装です。
type measurementPG struct {
	db *gorm.DB
}

// measurementPGがMeasurementRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MeasurementRepository = (*measurementPG)(nil)

// NewMeasurementPG は指定されたgorm.DB接続でmeasurementPGの新しいインスタンスを生成します。
func NewMeasurementPG(gdb *gorm.DB) *measurementPG {
	return &measurementPG{db: gdb}
}

// List は本人の体重記録を返します。from/toが与えられたときは測定時刻の
// 半開区間 [from, to) で絞り込みます。
func (r *measurementPG) List(ctx context.Context, userID uint, from, to *time.Time) ([]entity.Measurement, error) {
	q := r.db.WithContext(ctx).Where("id_user = ?", userID)
	if from != nil && to != nil {
		q = q.Where("measure_time >= ? AND measure_time < ?", *from, *to)
	}

	measurements := []entity.Measurement{}
	if err := q.Order("id").Find(&measurements).Error; err != nil {
		return nil, db.Translate(err, measurementConstraintMessages)
	}
	return measurements, nil
}

// FindByID はIDで体重記録を取得します。
func (r *measurementPG) FindByID(ctx context.Context, id uint) (*entity.Measurement, error) {
	var m entity.Measurement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, db.Translate(err, measurementConstraintMessages)
	}
	return &m, nil
}

// Create は体重記録を追加します。
func (r *measurementPG) Create(ctx context.Context, m *entity.Measurement) error {
	err := r.db.WithContext(ctx).Create(m).Error
	return db.Translate(err, measurementConstraintMessages)
}

// Update は与えられたフィールドだけを適用します。
func (r *measurementPG) Update(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Measurement{}).
		Where("id = ?", id).
		Updates(fields).Error
	return db.Translate(err, measurementConstraintMessages)
}

// Delete は体重記録を削除します。対象がなければNotFoundです。
func (r *measurementPG) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Measurement{})
	if res.Error != nil {
		return db.Translate(res.Error, measurementConstraintMessages)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
