package dto

type TaskItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	Tags        []TagItem `json:"tags"`
	TagList     []string  `json:"tag_list"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	DueDate     *string   `json:"due_date"`
	CompletedAt *string   `json:"completed_at"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *int     `json:"priority"`
	DueDate     *string  `json:"due_date"`
	IsActive    *bool    `json:"is_active"`
	TagIDs      []string `json:"tag_ids"`
}

// UpdateTaskRequest serves PUT and PATCH. Which fields were sent is read
// from the raw body, not from the pointers here.
type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,notblank,max=200"`
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority    *int     `json:"priority"`
	DueDate     *string  `json:"due_date"`
	IsActive    *bool    `json:"is_active"`
	TagIDs      []string `json:"tag_ids"`
}
