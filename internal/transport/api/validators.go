package api

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalField значение decimal поля. decimal.Decimal приходит в валидатор строкой через decimalTypeFunc.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch v := fl.Field().Interface().(type) {
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case decimal.Decimal:
		return v, true
	default:
		return decimal.Zero, false
	}
}

// validateDecimalGreaterThan тэг dgt: decimal строго больше параметра.
func validateDecimalGreaterThan(fl validator.FieldLevel) bool {
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	d, ok := decimalField(fl)
	return ok && d.GreaterThan(bound)
}

// validateDecimalGreaterOrEqual тэг dgte: decimal не меньше параметра.
func validateDecimalGreaterOrEqual(fl validator.FieldLevel) bool {
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	d, ok := decimalField(fl)
	return ok && d.GreaterThanOrEqual(bound)
}

func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// jsonFieldName имя поля в ошибках валидации берется из json тэга.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

var (
	registerOnce sync.Once
	errRegister  error
)

// registerValidators регистрирует валидаторы в движке gin. Движок глобальный, поэтому регистрация
// выполняется один раз на процесс.
func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			errRegister = fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

		for tag, fn := range map[string]validator.Func{
			"max_bytes": validateMaxBytes,
			"dgt":       validateDecimalGreaterThan,
			"dgte":      validateDecimalGreaterOrEqual,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				errRegister = fmt.Errorf("validator registration: %s", err.Error())
				return
			}
		}
	})
	return errRegister
}
