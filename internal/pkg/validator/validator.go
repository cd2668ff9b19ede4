package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pattaya-dashboard/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// Validate - валидация структуры, ошибки возвращаются как *errors.AppError с деталями по полям
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return ToAppError(err)
	}
	return nil
}

// ToAppError преобразует ошибки валидатора в ErrInvalidQuery
func ToAppError(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidQuery.WithDetails(map[string]interface{}{"reason": err.Error()})
	}

	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag() + fieldParam(fe)
	}
	return errors.ErrInvalidQuery.WithDetails(details)
}

func fieldParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return ""
	}
	return "=" + fe.Param()
}
