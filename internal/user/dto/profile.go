package dto

// UpdateProfileRequest carries the optional profile fields. Empty strings
// leave the stored value unchanged. ImagePath is a staged upload.
type UpdateProfileRequest struct {
	FullName  string
	Email     string
	ImagePath string
}
