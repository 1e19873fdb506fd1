package api

// MessageResponse 一般訊息響應模型
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"entry deleted"`
}
