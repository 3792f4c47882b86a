package validators

import (
	"context"
	"regexp"

	"github.com/kisaanlabs/kisaan-setu/internal/catalog"
	"github.com/kisaanlabs/kisaan-setu/models"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldLanguage        = "language"

	FieldFarmName = "farm_name"
	FieldFarmSize = "farm_size"
	FieldLocation = "location"
	FieldSoilType = "soil_type"
)

const minPasswordLength = 6

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]{10}$`)
)

type RegistrationValidator struct {
}

func NewRegistrationValidator() Validator {
	return &RegistrationValidator{}
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PersonalInfo:
		return v.validatePersonalInfo(ctx, value, fields...)
	case *models.PersonalInfo:
		return v.validatePersonalInfo(ctx, *value, fields...)

	case models.FarmInfo:
		return v.validateFarmInfo(ctx, value, fields...)
	case *models.FarmInfo:
		return v.validateFarmInfo(ctx, *value, fields...)

	case models.RegistrationRequest:
		return v.validateRegistrationRequest(ctx, value)
	case *models.RegistrationRequest:
		return v.validateRegistrationRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validatePersonalInfo(ctx context.Context, info models.PersonalInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword, FieldLanguage}
	}

	selected := make(map[string]bool, len(fields))
	for _, f := range fields {
		switch f {
		case FieldName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword, FieldLanguage:
			selected[f] = true
		default:
			return ErrUnknownField
		}
	}

	// Missing-field checks run for every selected field before any format
	// check, then format checks follow a fixed precedence: mismatch before
	// weak password before email before phone.
	for _, f := range fields {
		switch f {
		case FieldName:
			if info.Name == "" {
				return ErrMissingName
			}
		case FieldEmail:
			if info.Email == "" {
				return ErrMissingEmail
			}
		case FieldPhone:
			if info.Phone == "" {
				return ErrMissingPhone
			}
		case FieldPassword:
			if info.Password == "" {
				return ErrMissingPassword
			}
		case FieldConfirmPassword:
			if info.ConfirmPassword == "" {
				return ErrMissingConfirmPassword
			}
		}
	}

	if selected[FieldConfirmPassword] && info.Password != info.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if selected[FieldPassword] && len(info.Password) < minPasswordLength {
		return ErrWeakPassword
	}
	if selected[FieldEmail] && !emailRegexp.MatchString(info.Email) {
		return ErrInvalidEmail
	}
	if selected[FieldPhone] && !phoneRegexp.MatchString(info.Phone) {
		return ErrInvalidPhone
	}
	// empty language means "use the configured default", so only a
	// non-empty unknown value is rejected
	if selected[FieldLanguage] && info.Language != "" && !catalog.IsSupportedLanguage(info.Language) {
		return ErrUnsupportedLanguage
	}

	return nil
}

func (v *RegistrationValidator) validateFarmInfo(ctx context.Context, info models.FarmInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFarmName, FieldFarmSize, FieldLocation, FieldSoilType}
	}

	for _, f := range fields {
		switch f {
		case FieldFarmName:
			if info.FarmName == "" {
				return ErrMissingFarmName
			}
		case FieldFarmSize:
			if info.FarmSize == "" {
				return ErrMissingFarmSize
			}
		case FieldLocation:
			if info.Location == "" {
				return ErrMissingLocation
			}
		case FieldSoilType:
			if info.SoilType == "" {
				return ErrMissingSoilType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RegistrationValidator) validateRegistrationRequest(ctx context.Context, request models.RegistrationRequest) error {
	if err := v.validatePersonalInfo(ctx, request.Personal); err != nil {
		return err
	}
	return v.validateFarmInfo(ctx, request.Farm)
}
