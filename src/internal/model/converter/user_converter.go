package converter

import (
	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:           user.UserID,
		Name:         user.FullName,
		Email:        user.Email,
		Role:         user.Role,
		MobileNumber: user.MobileNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
