package types

import "time"

// Error kinds shared by every endpoint. Clients switch on Kind, the
// message is for humans.
const (
	ErrUnauthenticated   = "unauthenticated"
	ErrInvalidCredential = "invalid_credential"
	ErrForbidden         = "forbidden"
	ErrNotFound          = "not_found"
	ErrValidation        = "validation_failure"
	ErrUpstream          = "upstream_failure"
	ErrInternal          = "internal"
)

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorResponse is the single error envelope used by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func NewError(kind, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Kind: kind, Message: message}}
}

type UserResponse struct {
	ID                      uint   `json:"id"`
	Name                    string `json:"name"`
	Email                   string `json:"email"`
	Role                    string `json:"role"`
	NotificationPreferences bool   `json:"notification_preferences"`
}

type WorkshopResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MentorID    uint      `json:"mentor_id"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"date_time"`
}

type ActivityResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WorkshopID  uint      `json:"workshop_id"`
	DateTime    time.Time `json:"date_time"`
}

type EnrollmentResponse struct {
	ID         uint `json:"id"`
	LearnerID  uint `json:"learner_id"`
	WorkshopID uint `json:"workshop_id"`
}
