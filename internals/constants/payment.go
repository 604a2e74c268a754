package constants

// Payment methods accepted at checkout.
const (
	PaymentMethodEsewa  = "esewa"
	PaymentMethodKhalti = "khalti"
	PaymentMethodCash   = "cash"
)

// Order lifecycle. Orders are created pending and only the callback
// handler of the provider that created them moves them further.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusFailed    = "failed"
)

// Provider success sentinels checked on callback.
const (
	EsewaStatusComplete   = "COMPLETE"
	KhaltiStatusCompleted = "Completed"
)

const (
	CourseTypeVideo = "video"
	CourseTypeLive  = "live"
)
