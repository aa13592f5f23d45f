package envelope

// Response is the body of every API reply.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) *Response {
	return &Response{Success: true, Data: data}
}

// OKWithMessage wraps a successful payload with an acknowledgement text.
func OKWithMessage(data interface{}, message string) *Response {
	return &Response{Success: true, Data: data, Message: message}
}

// Ack is a successful reply that carries only a message.
func Ack(message string) *Response {
	return &Response{Success: true, Message: message}
}

// Fail wraps an error message.
func Fail(message string) *Response {
	return &Response{Success: false, Error: message}
}
