package request

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=300"`
	Email string `json:"email" validate:"required,email,max=300"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,notblank,max=300"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=300"`
}
