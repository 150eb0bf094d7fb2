package dto

// LoginRequest entrada del formulario de inicio de sesión.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" form:"emailOrUsername"`
	Password        string `json:"password" form:"password"`
	RememberMe      bool   `json:"rememberMe" form:"rememberMe"`
	ReturnURL       string `json:"returnUrl" form:"returnUrl"`
}

// RegisterRequest entrada del formulario de registro.
type RegisterRequest struct {
	Name            string `json:"name" form:"name"`
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Phone           string `json:"phone" form:"phone"`
	AcceptTerms     bool   `json:"acceptTerms" form:"acceptTerms"`
}

// FieldErrorResponse un error de validación de un campo del formulario.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo HTTP 400 con los errores por campo.
type ValidationErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []FieldErrorResponse `json:"fields"`
}
