package response

// MessageResponse is the body of every confirmation and every failure.
type MessageResponse struct {
	Message string `json:"message"`
}

type TaskCreatedResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}
