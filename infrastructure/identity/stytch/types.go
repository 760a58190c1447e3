package stytch

type sendMagicLinkResponse struct {
	RequestID    string `json:"request_id"`
	UserID       string `json:"user_id"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

type authenticateResponse struct {
	RequestID    string `json:"request_id"`
	UserID       string `json:"user_id"`
	SessionToken string `json:"session_token"`
	SessionJWT   string `json:"session_jwt"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

type sendOtpResponse struct {
	RequestID    string `json:"request_id"`
	UserID       string `json:"user_id"`
	PhoneID      string `json:"phone_id"`
	MethodID     string `json:"method_id"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}
