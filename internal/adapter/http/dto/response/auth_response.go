package response

type LoginResponse struct {
	Success                bool   `json:"success"`
	Message                string `json:"message"`
	Token                  string `json:"token,omitempty"`
	Username               string `json:"username,omitempty"`
	PasswordChangeRequired bool   `json:"passwordChangeRequired"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
