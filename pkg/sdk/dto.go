package sdk

import (
	"time"
)

// StatusType marks an API response as success, fail, or error
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusFail    StatusType = "fail"
	StatusError   StatusType = "error"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  StatusType `json:"status"`          // Status message
	Code    int        `json:"code"`            // Status code
	Message string     `json:"message"`         // Human-readable message
	Data    T          `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any        `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

// Device is the wire representation of one inventory record
type Device struct {
	ID           uint      `json:"id"`
	Hardware     *string   `json:"hardware"`
	SystemModel  string    `json:"system_model,omitempty"`
	Processor    string    `json:"processor,omitempty"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Category     string    `json:"category"`
	Assignee     string    `json:"assignee,omitempty"`
	Status       string    `json:"status,omitempty"`
	IsDisposed   bool      `json:"is_disposed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
