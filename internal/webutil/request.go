package webutil

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"

	"github.com/go-playground/validator/v10"
)

// StudentPath is the {username} segment shared by every student route.
type StudentPath struct {
	Username string `param:"username" validate:"required,min=1,max=64"`
}

type SubjectPath struct {
	StudentPath
	Subject string `param:"subject" validate:"required,min=1,max=100"`
}

type DeckPath struct {
	SubjectPath
	Deck string `param:"deck" validate:"required,min=1,max=100"`
}

type FlashcardPath struct {
	DeckPath
	FlashcardID uint `param:"flashcard" validate:"gt=0"`
}

// BindPath fills the `param`-tagged fields of dst from the chi route
// parameters and validates the result. dst must point to a struct whose
// tagged fields are strings or unsigned integers.
func BindPath(r *http.Request, dst interface{}) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("webutil.BindPath: dst must be a pointer to a struct, got %T", dst)
	}
	if err := bindStruct(r, v.Elem()); err != nil {
		return err
	}

	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", "The address could not be read.", "", model.ErrInvalidInput)
	}
	return nil
}

func bindStruct(r *http.Request, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := bindStruct(r, fv); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get("param")
		if name == "" || name == "-" {
			continue
		}
		raw := middleware.URLParam(r, name)

		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(raw, 10, fv.Type().Bits())
			if err != nil {
				msg := fmt.Sprintf("%s must be a positive whole number.", displayName(name))
				return model.NewAppError("VALIDATION_ERROR", msg, name, model.ErrInvalidInput)
			}
			fv.SetUint(n)
		default:
			return fmt.Errorf("webutil.BindPath: unsupported kind %s for param %q", fv.Kind(), name)
		}
	}
	return nil
}
