// Package usecase はfoodlistフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"cookcal_backend/internal/domain/apperr"
	authusecase "cookcal_backend/internal/feature/auth/usecase"
	"cookcal_backend/internal/feature/foodlist/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
)

// dateLayout は日付フィルタの書式です。
const dateLayout = "2006-01-02"

// EntryRow は食事記録一覧の1行です。食品マスタと結合済みの読み取りモデルで、
// クライアントが追加の参照なしに表示できる形になっています。
type EntryRow struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Kcal100g float64   `json:"kcal_100g"`
	Amount   float64   `json:"amount"`
	Time     time.Time `json:"time"`
}

// EntryRepository は食事記録の永続化層を抽象化します。
type EntryRepository interface {
	List(ctx context.Context, userID uint, from, to *time.Time) ([]EntryRow, error)
	FindByID(ctx context.Context, id uint) (*entity.Entry, error)
	Create(ctx context.Context, e *entity.Entry) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// CreateInput は食事記録追加の入力です。記録時刻はサーバー側で付与します。
type CreateInput struct {
	FoodID uint
	Amount float64
}

// UpdateInput は食事記録の部分更新パッチです。
type UpdateInput struct {
	Amount *float64
}

func (in UpdateInput) fields() map[string]any {
	fields := map[string]any{}
	if in.Amount != nil {
		fields["amount"] = *in.Amount
	}
	return fields
}

// FoodlistUsecase は食事記録のビジネスロジックを提供します。
// すべての操作は認証済みユーザー自身の記録に限定されます。
type FoodlistUsecase struct {
	entries EntryRepository
	now     func() time.Time
}

// NewFoodlistUsecase はFoodlistUsecaseの新しいインスタンスを生成します。
func NewFoodlistUsecase(entries EntryRepository) *FoodlistUsecase {
	return &FoodlistUsecase{entries: entries, now: time.Now}
}

// List は本人の食事記録を返します。dateが空なら全件、"2006-01-02"形式なら
// その日の記録だけを返します。解釈できない日付は空リストになります。
func (u *FoodlistUsecase) List(ctx context.Context, principal *userentity.User, date string) ([]EntryRow, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if date == "" {
		return u.entries.List(ctx, principal.ID, nil, nil)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return []EntryRow{}, nil
	}
	from := day
	to := day.AddDate(0, 0, 1)
	return u.entries.List(ctx, principal.ID, &from, &to)
}

// Create は本人の食事記録を追加します。
func (u *FoodlistUsecase) Create(ctx context.Context, principal *userentity.User, in CreateInput) (*entity.Entry, error) {
	if principal == nil {
		return nil, apperr.ErrUnauthenticated
	}
	entry := &entity.Entry{
		UserID: principal.ID,
		FoodID: in.FoodID,
		Amount: in.Amount,
		Time:   u.now(),
	}
	if err := u.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update は本人の食事記録に部分更新を適用し、最新の記録を返します。
func (u *FoodlistUsecase) Update(ctx context.Context, principal *userentity.User, id uint, in UpdateInput) (*entity.Entry, error) {
	target, err := u.entries.FindByID(ctx, id)
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
	if err := u.entries.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return u.entries.FindByID(ctx, id)
}

// Delete は本人の食事記録を削除します。
func (u *FoodlistUsecase) Delete(ctx context.Context, principal *userentity.User, id uint) error {
	target, err := u.entries.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authusecase.AuthorizeOwner(principal, target.UserID); err != nil {
		return err
	}
	return u.entries.Delete(ctx, id)
}
