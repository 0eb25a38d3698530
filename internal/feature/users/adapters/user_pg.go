// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	foodlistentity "cookcal_backend/internal/feature/foodlist/domain/entity"
	recipeentity "cookcal_backend/internal/feature/recipes/domain/entity"
	"cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/feature/users/usecase"
	weightentity "cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/platform/db"
)

// userConstraintMessages はusersテーブルの制約名をユーザー向けメッセージに対応付けます。
var userConstraintMessages = db.ConstraintMessages{
	"gender_between_0_and_2":        "gender must be between 0 and 2",
	"age_between_1_and_120":         "age must be between 1 and 120",
	"positive_goal_weight":          "goal weight must be positive",
	"positive_height":               "height must be positive",
	"state_between_0_and_2":         "state must be between 0 and 2",
	"first_name_minimum_characters": "first name must be at least 2 characters",
	"last_name_minimum_characters":  "last name must be at least 2 characters",
}

// userPG はUserRepositoryインターフェースのGORM実装です。
type userPG struct {
	db *gorm.DB
}

// userPGがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userPG)(nil)

// NewUserPG は指定されたgorm.DB接続でuserPGの新しいインスタンスを生成します。
func NewUserPG(gdb *gorm.DB) *userPG {
	return &userPG{db: gdb}
}

// Create はユーザーを追加します。メールアドレス重複はErrEmailTakenになります。
func (r *userPG) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// usersテーブル唯一のユニーク制約はメールアドレス
		if db.IsUniqueViolation(err) {
			return apperr.ErrEmailTaken
		}
		return db.Translate(err, userConstraintMessages)
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *userPG) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND id <> ?", email, entity.SentinelID).
		First(&u).Error
	if err != nil {
		return nil, db.Translate(err, userConstraintMessages)
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。センチネルIDの直接参照はNotFoundです。
func (r *userPG) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if id == entity.SentinelID {
		return nil, apperr.ErrNotFound
	}
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, db.Translate(err, userConstraintMessages)
	}
	return &u, nil
}

// List は氏名の部分一致（大文字小文字を区別しない）でユーザーを検索します。
// フィルタが空のときはセンチネルを除く全ユーザーを返します。
func (r *userPG) List(ctx context.Context, name string) ([]entity.User, error) {
	q := r.db.WithContext(ctx).Where("id <> ?", entity.SentinelID)
	if name != "" {
		pattern := "%" + strings.ToLower(name) + "%"
		q = q.Where("LOWER(first_name || ' ' || last_name) LIKE ?", pattern)
	}

	var users []entity.User
	if err := q.Order("id").Find(&users).Error; err != nil {
		return nil, db.Translate(err, userConstraintMessages)
	}
	return users, nil
}

// Update は与えられたフィールドだけを1トランザクションで適用します。
func (r *userPG) Update(ctx context.Context, id uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(fields).Error
	return db.Translate(err, userConstraintMessages)
}

// Delete はユーザーと所有データを1トランザクションで削除します。
// 食事記録と体重記録は連鎖削除し、レシピはセンチネル所有（id 0）に付け替えます。
func (r *userPG) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_user = ?", id).Delete(&foodlistentity.Entry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_user = ?", id).Delete(&weightentity.Measurement{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&recipeentity.Recipe{}).
			Where("id_user = ?", id).
			Update("id_user", entity.SentinelID).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.User{}).Error
	})
	return db.Translate(err, userConstraintMessages)
}
