package entity

// Inquiry is a contact-form submission. Terminal once created.
type Inquiry struct {
	BaseSimple
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
}
