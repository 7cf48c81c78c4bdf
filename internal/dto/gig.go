package dto

type CreateGigRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required,is-skill-category"`
	City        string   `json:"city" validate:"required"`
	Address     string   `json:"address"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// UpdateGigRequest is an explicit patch: nil fields are not touched.
type UpdateGigRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category" validate:"omitempty,is-skill-category"`
	City        *string  `json:"city"`
	Address     *string  `json:"address"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	IsActive    *bool    `json:"isActive"`
}

func (r *UpdateGigRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.Category != nil {
		updates["category"] = *r.Category
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.Lat != nil {
		updates["lat"] = *r.Lat
	}
	if r.Lng != nil {
		updates["lng"] = *r.Lng
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}
