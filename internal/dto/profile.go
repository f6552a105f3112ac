package dto

// UpdateProfileRequest edits the caller's own profile.
type UpdateProfileRequest struct {
	TeamNumber     *int     `json:"teamNumber" validate:"omitempty,gt=0"`
	Department     string   `json:"department" validate:"max=120"`
	ExistingSkills []string `json:"existingSkills" validate:"max=50,dive,required,max=80"`
}
