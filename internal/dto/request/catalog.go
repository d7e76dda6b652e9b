package request

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
}

type CreatePackageTypeRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=50"`
	DurationInMonths int    `json:"duration_in_months" validate:"required,gte=1"`
}

type CreatePackageRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=100"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=200"`
	Price         float64 `json:"price" validate:"gte=0"`
	CategoryID    string  `json:"category_id" validate:"required,uuid4"`
	PackageTypeID string  `json:"package_type_id" validate:"required,uuid4"`
}
