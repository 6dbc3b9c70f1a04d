package shared

import "errors"

// ErrValidation - mọi lỗi validate DTO đều match errors.Is(err, ErrValidation)
var ErrValidation = errors.New("validation failed")

// ValidationError bọc lỗi gốc (thường là validation.Errors của ozzo)
// để handler vẫn lấy được chi tiết từng field
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError trả về nil nếu err nil
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}
