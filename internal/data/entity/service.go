package entity

// ServiceCategory groups the offered services (tax, accounting, advisory,
// training).
type ServiceCategory struct {
	BaseNoDelete
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Service is a bookable offering with a fixed price and duration.
type Service struct {
	BaseNoDelete
	CategoryID  int64   `db:"category_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Duration    int     `db:"duration"` // minutes
	IsActive    bool    `db:"is_active"`
}
