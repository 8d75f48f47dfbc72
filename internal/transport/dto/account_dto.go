package dto

// ChangePasswordRequest defines the structure for changing the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateProfileDTO defines the profile update payload.
// It is bound from multipart (or urlencoded) form fields; JSON uses the same names.
type UpdateProfileDTO struct {
	Avatar  *string `json:"avatar,omitempty" form:"avatar"`
	Name    string  `json:"name" form:"name"`
	Email   string  `json:"email" form:"email"`
	PhoneNo string  `json:"phoneNo" form:"phoneNo"`
}
