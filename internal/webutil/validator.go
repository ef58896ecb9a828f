package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is shared by every handler.
var Validator *validator.Validate

// Trans renders validation messages in English.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"username":  "Username",
	"subject":   "Subject",
	"deck":      "Deck",
	"flashcard": "Flashcard",
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// Field names come from the param tag, which matches the route parameter.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("param"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, displayName(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0} is required.")
	registerTranslation("min", "{0} must be at least {1} characters long.")
	registerTranslation("max", "{0} must be at most {1} characters long.")
	registerTranslation("gt", "{0} must be greater than {1}.")
}

func displayName(field string) string {
	if name, ok := fieldNameTranslations[field]; ok {
		return name
	}
	return field
}
