package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

type DeleteRequestResponse struct {
	Token      string `json:"token"`
	Collection string `json:"collection"`
	ID         int    `json:"id"`
	Prompt     string `json:"prompt"`
	ExpiresAt  string `json:"expiresAt"`
}

type CompleteDeleteRequest struct {
	Confirm bool `json:"confirm"`
}
