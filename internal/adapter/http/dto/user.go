package dto

type UserItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// is_active is not accepted on writes.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=150"`
	Email string `json:"email" binding:"required,notblank,max=254"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank,max=150"`
	Email *string `json:"email" binding:"omitempty,notblank,max=254"`
}
