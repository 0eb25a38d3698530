// Package dto defines transport-level request/response types for the users
// feature. Optionality is explicit: required fields bind hard, omittable
// patch fields are pointers.
package dto

import (
	openapitypes "github.com/oapi-codegen/runtime/types"

	"cookcal_backend/internal/feature/users/usecase"
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Email         openapitypes.Email `json:"email" binding:"required,email"`
	Password      string             `json:"password" binding:"required"`
	FirstName     string             `json:"first_name" binding:"required"`
	LastName      string             `json:"last_name" binding:"required"`
	Gender        int16              `json:"gender"`
	Age           int16              `json:"age" binding:"required"`
	GoalWeight    float64            `json:"goal_weight"`
	Height        float64            `json:"height"`
	State         int16              `json:"state"`
	IsNutrAdviser bool               `json:"is_nutr_adviser"`
}

// Input converts the request into the usecase input.
func (r CreateUserRequest) Input() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:         string(r.Email),
		Password:      r.Password,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        r.Gender,
		Age:           r.Age,
		GoalWeight:    r.GoalWeight,
		Height:        r.Height,
		State:         r.State,
		IsNutrAdviser: r.IsNutrAdviser,
	}
}

// UpdateUserRequest is the sparse profile patch. Absent fields stay nil and
// never overwrite stored values.
type UpdateUserRequest struct {
	GoalWeight    *float64 `json:"goal_weight"`
	Height        *float64 `json:"height"`
	State         *int16   `json:"state"`
	IsNutrAdviser *bool    `json:"is_nutr_adviser"`
}

// Input converts the patch into the usecase input.
func (r UpdateUserRequest) Input() usecase.UpdateInput {
	return usecase.UpdateInput{
		GoalWeight:    r.GoalWeight,
		Height:        r.Height,
		State:         r.State,
		IsNutrAdviser: r.IsNutrAdviser,
	}
}
