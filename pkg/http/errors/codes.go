package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Content errors
	ErrCodeContentTooShort          = "content_too_short"
	ErrCodeUnsupportedConfiguration = "unsupported_configuration"

	// Quiz lifecycle errors
	ErrCodeQuizNotFound     = "quiz_not_found"
	ErrCodeQuestionIndex    = "question_index_out_of_range"
	ErrCodeAlreadyCompleted = "quiz_already_completed"
	ErrCodeEmptyQuiz        = "empty_quiz"
	ErrCodeGenerationFailed = "generation_failed"

	// Export errors
	ErrCodeUnsupportedFormat = "unsupported_export_format"
	ErrCodeExportFailed      = "export_failed"

	// Server errors
	ErrCodeInternalError = "internal_error"
)
