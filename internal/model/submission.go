package model

// SubmissionFields is the presence contract of the contact form, in the
// order missing fields are reported.
var SubmissionFields = []string{"name", "email", "message"}

// SubmitRequest is the typed payload of POST /api/submit. It is filled
// from the normalized record by validation.BindAndValidate.
//
// The required tags repeat the presence check so a SubmitRequest built
// outside BindAndValidate is still validated.
type SubmitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// RequiredFields implements validation.Payload.
func (r *SubmitRequest) RequiredFields() []string {
	return SubmissionFields
}

// Load implements validation.Payload.
func (r *SubmitRequest) Load(fields map[string]string) {
	r.Name = fields["name"]
	r.Email = fields["email"]
	r.Message = fields["message"]
}

// Validate implements validation.Validatable.
func (r *SubmitRequest) Validate() error {
	return validate.Struct(r)
}

// Submission is the normalized submission echoed back to the client.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submission returns the echo payload for r.
func (r *SubmitRequest) Submission() Submission {
	return Submission{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}
