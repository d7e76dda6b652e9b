package request

type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=5"`
}
