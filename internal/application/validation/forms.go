package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Estacionamientos-api/internal/application/dto"
)

// Nombres de las reglas reportadas en FieldError.Rule.
const (
	RuleRequired   = "required"
	RuleLength     = "length"
	RuleEmail      = "email"
	RulePhone      = "phone"
	RuleEqual      = "equal"
	RuleMustBeTrue = "must_be_true"
)

// LoginSchema reglas del formulario de login. RememberMe y ReturnURL son opcionales y libres.
var LoginSchema = Schema[dto.LoginRequest]{
	Fields: []FieldRules[dto.LoginRequest]{
		{
			Field: "emailOrUsername",
			Value: func(in dto.LoginRequest) any { return in.EmailOrUsername },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "El email o nombre de usuario es obligatorio"},
			},
		},
		{
			Field: "password",
			Value: func(in dto.LoginRequest) any { return in.Password },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "La contraseña es obligatoria"},
			},
		},
	},
}

// RegisterSchema reglas del formulario de registro.
var RegisterSchema = Schema[dto.RegisterRequest]{
	Fields: []FieldRules[dto.RegisterRequest]{
		{
			Field: "name",
			Value: func(in dto.RegisterRequest) any { return in.Name },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "El nombre es obligatorio"},
				{Name: RuleLength, Tag: "omitempty,max=120", Message: "El nombre no puede superar los 120 caracteres"},
			},
		},
		{
			Field: "username",
			Value: func(in dto.RegisterRequest) any { return in.Username },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "El nombre de usuario es obligatorio"},
				{Name: RuleLength, Tag: "omitempty,max=50", Message: "El nombre de usuario no puede superar los 50 caracteres"},
			},
		},
		{
			Field: "email",
			Value: func(in dto.RegisterRequest) any { return in.Email },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "El email es obligatorio"},
				{Name: RuleEmail, Tag: "omitempty,email", Message: "El email no tiene un formato válido"},
				{Name: RuleLength, Tag: "omitempty,max=254", Message: "El email no puede superar los 254 caracteres"},
			},
		},
		{
			Field: "password",
			Value: func(in dto.RegisterRequest) any { return in.Password },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "La contraseña es obligatoria"},
				{Name: RuleLength, Tag: "omitempty,min=8,max=200", Message: "La contraseña debe tener entre 8 y 200 caracteres"},
			},
		},
		{
			Field: "confirmPassword",
			Value: func(in dto.RegisterRequest) any { return in.ConfirmPassword },
			Rules: []Rule{
				{Name: RuleRequired, Tag: "notblank", Message: "Debe confirmar la contraseña"},
			},
		},
		{
			Field: "phone",
			Value: func(in dto.RegisterRequest) any { return in.Phone },
			Rules: []Rule{
				{Name: RulePhone, Tag: "omitempty,phone", Message: "El teléfono no tiene un formato válido"},
				{Name: RuleLength, Tag: "omitempty,max=30", Message: "El teléfono no puede superar los 30 caracteres"},
			},
		},
		{
			Field: "acceptTerms",
			Value: func(in dto.RegisterRequest) any { return in.AcceptTerms },
			Rules: []Rule{
				{Name: RuleMustBeTrue, Tag: "mustbetrue", Message: "Debe aceptar los términos y condiciones"},
			},
		},
	},
	Objects: []ObjectRule[dto.RegisterRequest]{
		confirmPasswordMatches,
	},
}

func confirmPasswordMatches(v *validator.Validate, in dto.RegisterRequest) *FieldError {
	if err := v.VarWithValue(in.ConfirmPassword, in.Password, "eqfield"); err != nil {
		return &FieldError{Field: "confirmPassword", Rule: RuleEqual, Message: "Las contraseñas no coinciden"}
	}
	return nil
}

// ValidateLogin valida el formulario de login. Devuelve nil si es válido.
func ValidateLogin(in dto.LoginRequest) Errors {
	return LoginSchema.Validate(in)
}

// ValidateRegister valida el formulario de registro. Devuelve nil si es válido.
func ValidateRegister(in dto.RegisterRequest) Errors {
	return RegisterSchema.Validate(in)
}
