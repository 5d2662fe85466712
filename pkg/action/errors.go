package action

import "fmt"

// ActionError signals a composition/configuration problem discovered
// during execution, such as a dynamic repeat factor that cannot be
// resolved. Series never absorb it: it propagates to the caller of the
// outermost Execute regardless of any failure policy.
type ActionError struct {
	Msg string
}

func (e *ActionError) Error() string {
	return e.Msg
}

func newMissingFactorError(name string) *ActionError {
	return &ActionError{Msg: fmt.Sprintf("No extra repeat factor found for name '%s'", name)}
}

func newBadFactorError(name string, value any) *ActionError {
	return &ActionError{Msg: fmt.Sprintf("Repeat factor '%s' is not an integer: %v", name, value)}
}
