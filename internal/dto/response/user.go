package response

import "shareit/internal/data/entity"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserShortResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
