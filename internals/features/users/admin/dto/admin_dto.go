package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdatePhoneRequest struct {
	NewPhone string `json:"newPhone" validate:"required"`
}

// AdminSummary dipakai di list & response login, tanpa hash password.
type AdminSummary struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}
