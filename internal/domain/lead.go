package domain

type LeadInput struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	Message     string `json:"message" form:"message"`
	VehicleSlug string `json:"vehicle,omitempty" form:"vehicle"`
}

type Lead struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	Message     string `db:"message" json:"message"`
	VehicleSlug string `db:"vehicle_slug" json:"vehicle,omitempty"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}
