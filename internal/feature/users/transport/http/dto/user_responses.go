package dto

import (
	"time"

	"cookcal_backend/internal/feature/users/domain/entity"
)

// UserResponse is the public representation of an account. The password
// digest and the stored picture never leave through JSON.
type UserResponse struct {
	ID            uint   `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Gender        int16  `json:"gender"`
	Age           int16  `json:"age"`
	State         int16  `json:"state"`
	IsNutrAdviser bool   `json:"is_nutr_adviser"`
}

// UserDetailResponse extends UserResponse with the fields the owner may see.
type UserDetailResponse struct {
	UserResponse
	Email      string    `json:"email"`
	GoalWeight float64   `json:"goal_weight"`
	Height     float64   `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserResponse maps an entity to its public representation.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Gender:        u.Gender,
		Age:           u.Age,
		State:         u.State,
		IsNutrAdviser: u.IsNutrAdviser,
	}
}

// NewUserDetailResponse maps an entity to its owner-facing representation.
func NewUserDetailResponse(u *entity.User) UserDetailResponse {
	return UserDetailResponse{
		UserResponse: NewUserResponse(u),
		Email:        u.Email,
		GoalWeight:   u.GoalWeight,
		Height:       u.Height,
		CreatedAt:    u.CreatedAt,
	}
}

// NewUserResponses maps a list of entities.
func NewUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
