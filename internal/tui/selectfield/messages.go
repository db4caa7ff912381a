package selectfield

import "context"

// focusSearchMsg asks the field identified by owner to focus its search
// input. It is dropped if ctx was cancelled before delivery.
type focusSearchMsg struct {
	owner string
	ctx   context.Context
}
