package notify

// SendSMSRequest is the gateway payload for one outbound message.
type SendSMSRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendSMSResponse is the gateway's reply.
type SendSMSResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
