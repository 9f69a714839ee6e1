package dto

type CommentCreate struct {
	Body string `json:"body"`
}

type CommentUpdate struct {
	Body *string `json:"body"`
}
