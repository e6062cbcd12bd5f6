package entity

// OrderStatus lifecycle: Created -> Preparing -> Ready -> Completed,
// with Canceled reachable from every non-terminal state.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "Created"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCanceled  OrderStatus = "Canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusPreparing, StatusReady, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Terminal states accept no further transition.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}
