// Package usecase はweightsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"cookcal_backend/internal/domain/apperr"
	authusecase "cookcal_backend/internal/feature/auth/usecase"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/feature/weights/domain/entity"
)

// dateLayout は日付フィルタの書式です。
const dateLayout = "2006-01-02"

// MeasurementRepository は体重記録の永続化層を抽象化します。
type MeasurementRepository interface {
	List(ctx context.Context, userID uint, from, to *time.Time) ([]entity.Measurement, error)
	FindByID(ctx context.Context, id uint) (*entity.Measurement, error)
	Create(ctx context.Context, m *entity.Measurement) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// CreateInput は体重記録追加の入力です。記録時刻はサーバー側で付与します。
type CreateInput struct {
	Weight float64
}

// UpdateInput は体重記録の部分更新パッチです。
type UpdateInput struct {
	Weight *float64
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Weight != nil {
		fields["weight"] = *in.Weight
	}
	return fields
}

// WeightsUsecase は体重記録のビジネスロジックを提供します。
// すべての操作は認証済みユーザー自身の記録に限定されます。
type WeightsUsecase struct {
	measurements MeasurementRepository
	now          func() time.Time
}

// NewWeightsUsecase はWeightsUsecaseの新しいインスタンスを生成します。
func NewWeightsUsecase(measurements MeasurementRepository) *WeightsUsecase {
	return &WeightsUsecase{measurements: measurements, now: time.Now}
}

// List は本人の体重記録を返します。dateが空なら全件、"2006-01-02"形式なら
// その日の記録だけを返します。解釈できない日付は空リストになります。
func (u *WeightsUsecase) List(ctx context.Context, principal *userentity.User, date string) ([]entity.Measurement, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if date == "" {
		return u.measurements.List(ctx, principal.ID, nil, nil)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return []entity.Measurement{}, nil
	}
	from := day
	to := day.AddDate(0, 0, 1)
	return u.measurements.List(ctx, principal.ID, &from, &to)
}

// Create は本人の体重記録を追加します。
func (u *WeightsUsecase) Create(ctx context.Context, principal *userentity.User, in CreateInput) (*entity.Measurement, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthenticated
	}
	m := &entity.Measurement{
		UserID:      principal.ID,
		Weight:      in.Weight,
		MeasureTime: u.now(),
	}
	if err := u.measurements.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update は本人の体重記録に部分更新を適用し、最新の記録を返します。
func (u *WeightsUsecase) Update(ctx context.Context, principal *userentity.User, id uint, in UpdateInput) (*entity.Measurement, error) {
	target, err := u.measurements.FindByID(ctx, id)
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
	if err := u.measurements.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return u.measurements.FindByID(ctx, id)
}

// Delete は本人の体重記録を削除します。
func (u *WeightsUsecase) Delete(ctx context.Context, principal *userentity.User, id uint) error {
	target, err := u.measurements.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authusecase.AuthorizeOwner(principal, target.UserID); err != nil {
		return err
	}
	return u.measurements.Delete(ctx, id)
}
