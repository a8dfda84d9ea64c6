package dto

type TagItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTagRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=50"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateTagRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=50"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
