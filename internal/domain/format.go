package domain

// Display and wire format patterns shared across the application.
const (
	// DisplayDateLayout is the layout for dates shown to the user.
	DisplayDateLayout = "02.01.2006"
	// DateLayout is the layout for dates in the persisted stores.
	DateLayout = "2006-01-02"
	// TimeLayout is the layout for times of day, both displayed and persisted.
	TimeLayout = "15:04"
	// AmountPattern formats monetary amounts to two decimal places.
	AmountPattern = "%.2f"
)
