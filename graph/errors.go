package graph

import "github.com/JinJinHistory/climb-hub/utils"

// apiError carries the taxonomy code into the GraphQL error extensions
// so callers can tell conflicts, referential failures, not-found, and
// unavailability apart without parsing messages.
type apiError struct {
	err error
}

func (e *apiError) Error() string {
	return e.err.Error()
}

func (e *apiError) Unwrap() error {
	return e.err
}

// Extensions implements gqlerrors.ExtendedError.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": utils.ErrorCode(e.err),
	}
}

func wrapError(err error) error {
	return &apiError{err: err}
}
