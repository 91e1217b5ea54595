package errors

var (
	// Domain errors — used in usecase/repository
	ErrSelfConnection       = InvalidArg("cannot connect with yourself")
	ErrConnectionNotFound   = NotFound("connection request not found")
	ErrUserNotFound         = NotFound("user not found")
	ErrNotConnected         = Forbidden("not connected")
	ErrEmptyMessage         = InvalidArg("message content is required")
	ErrMessageTooLong       = InvalidArg("message content exceeds 2000 characters")
	ErrInvalidRadius        = InvalidArg("radius must be between 50 and 5000 meters")
	ErrRequestAlreadyClosed = NotFound("request not found or already processed")
)

func ErrConnectionFailed(cause error) error {
	return Wrap(CodeInternal, "failed to update connection", cause)
}

func ErrFeedFailed(cause error) error {
	return Wrap(CodeInternal, "failed to build proximity feed", cause)
}
