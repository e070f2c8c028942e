package dto

type RoomRequest struct {
	Topic       string `json:"topic" binding:"required,max=200"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}
