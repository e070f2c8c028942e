package dto

type MessagePayload struct {
	Body string `json:"body" binding:"required"`
}
