package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/dayjournal/internal/constants"
	"github.com/julianstephens/dayjournal/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	mustRegister("journaldate", validateJournalDate)
	mustRegister("hhmm", validateClockTime)
	mustRegister("colortheme", validateColorTheme)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// IsCanonicalDate reports whether s is a real calendar date written exactly as YYYY-MM-DD.
func IsCanonicalDate(s string) bool {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return false
	}
	return t.Format(constants.DateFormat) == s
}

// IsClockTime reports whether s is a valid HH:MM time.
func IsClockTime(s string) bool {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return false
	}
	return t.Format(constants.TimeFormat) == s
}

func validateJournalDate(fl validator.FieldLevel) bool {
	return IsCanonicalDate(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return IsClockTime(fl.Field().String())
}

func validateColorTheme(fl validator.FieldLevel) bool {
	return slices.Contains(constants.ColorThemes, fl.Field().String())
}

// ValidateEntry checks a journal entry before it is written.
func ValidateEntry(entry models.JournalEntry) error {
	return describe("entry", validate.Struct(entry))
}

// ValidatePreferences checks preferences before they are written.
func ValidatePreferences(prefs models.Preferences) error {
	return describe("preferences", validate.Struct(prefs))
}

// describe turns validator field errors into a single readable error.
func describe(subject string, err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid %s: %s", subject, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "journaldate":
		return fmt.Sprintf("%s %q is not a YYYY-MM-DD date", fe.Field(), fe.Value())
	case "hhmm":
		return fmt.Sprintf("%s %q is not an HH:MM time", fe.Field(), fe.Value())
	case "colortheme":
		return fmt.Sprintf("%s %q is not a known color theme", fe.Field(), fe.Value())
	case "unique":
		return fmt.Sprintf("%s contains duplicate labels", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
