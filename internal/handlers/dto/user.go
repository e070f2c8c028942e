package dto

// UpdateProfileRequest uses pointers so an absent field is left alone while
// an explicit empty string clears the stored value.
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=200"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
