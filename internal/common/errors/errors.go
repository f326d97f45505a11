// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration synthesis errors. UNSUPPORTED_ARCHETYPE is the only
	// business failure the factory itself produces; every other synthesis
	// branch resolves through a fallback chain instead of failing.
	ErrCodeUnsupportedArchetype ErrorCode = "UNSUPPORTED_ARCHETYPE"
	ErrCodeSlotTypeConflict     ErrorCode = "SLOT_TYPE_CONFLICT"

	// Worker input handling errors.
	ErrCodeInputParsingFailed ErrorCode = "INPUT_PARSING_FAILED"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"

	// Persistence and side-channel errors raised by the boundary workers.
	ErrCodeDraftPersistFailed     ErrorCode = "DRAFT_PERSIST_FAILED"
	ErrCodeDraftIndexFailed       ErrorCode = "DRAFT_INDEX_FAILED"
	ErrCodeDraftCacheFailed       ErrorCode = "DRAFT_CACHE_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeOutputSchemaViolation  ErrorCode = "OUTPUT_SCHEMA_VIOLATION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewUnsupportedArchetypeError creates a non-retryable error for an archetype
// absent from the registry. The calling layer maps this to a validation message.
func NewUnsupportedArchetypeError(archetype string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedArchetype,
		Message:   "Agent archetype is not registered",
		Details:   fmt.Sprintf("archetype: %s", archetype),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSlotTypeConflictError flags a variable-schema table whose archetype slot
// redeclares a core slot with a different type. This is a configuration bug,
// not a caller error.
func NewSlotTypeConflictError(slotName, coreType, archetypeType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSlotTypeConflict,
		Message:   "Archetype slot conflicts with core slot type",
		Details:   fmt.Sprintf("slot: %s, core type: %s, archetype type: %s", slotName, coreType, archetypeType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputParsingFailedError creates a non-retryable job variable parsing error.
func NewInputParsingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParsingFailed,
		Message:   "Failed to parse job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftPersistFailedError creates a retryable draft store error.
func NewDraftPersistFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftPersistFailed,
		Message:   "Draft persistence failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftIndexFailedError creates a retryable search index error.
func NewDraftIndexFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftIndexFailed,
		Message:   "Draft search indexing failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftCacheFailedError creates a retryable configuration cache error.
func NewDraftCacheFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftCacheFailed,
		Message:   "Configuration draft cache operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutputSchemaViolationError flags a worker output document that does not
// match its published schema.
func NewOutputSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutputSchemaViolation,
		Message:   "Worker output failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes. The codes
// are identical on both sides so process models can reference them directly.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeUnsupportedArchetype:   "UNSUPPORTED_ARCHETYPE",
	ErrCodeSlotTypeConflict:       "SLOT_TYPE_CONFLICT",
	ErrCodeInputParsingFailed:     "INPUT_PARSING_FAILED",
	ErrCodeValidationFailed:       "VALIDATION_FAILED",
	ErrCodeDraftPersistFailed:     "DRAFT_PERSIST_FAILED",
	ErrCodeDraftIndexFailed:       "DRAFT_INDEX_FAILED",
	ErrCodeDraftCacheFailed:       "DRAFT_CACHE_FAILED",
	ErrCodeNotificationSendFailed: "NOTIFICATION_SEND_FAILED",
	ErrCodeOutputSchemaViolation:  "OUTPUT_SCHEMA_VIOLATION",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDraftPersistFailed,
		ErrCodeDraftIndexFailed,
		ErrCodeNotificationSendFailed:
		return 3 // Retryable technical errors

	case ErrCodeDraftCacheFailed:
		return 2 // Cache is best-effort; cap the retries

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "ARCHETYPE") || strings.Contains(codeStr, "SLOT"):
		return "SYNTHESIS"
	case strings.Contains(codeStr, "PERSIST") || strings.Contains(codeStr, "INDEX") || strings.Contains(codeStr, "CACHE"):
		return "PERSISTENCE"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PARSING") || strings.Contains(codeStr, "SCHEMA"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
