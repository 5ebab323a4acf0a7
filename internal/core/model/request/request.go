package request

type CreateTaskRequest struct {
	UserID      string `json:"userId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskRequest is a merge patch: only fields present in the body are
// written, so every field is a pointer. Unknown fields are dropped on bind
// and the identifier is not bindable at all.
type UpdateTaskRequest struct {
	UserID      *string `json:"userId"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
