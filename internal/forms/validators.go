package forms

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

var registerOnce sync.Once

// RegisterValidators installs the custom tags used by the form structs on gin's
// binding validator. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			_, ok := genreSet[fl.Field().String()]
			return ok
		})
		_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
			_, ok := stateSet[fl.Field().String()]
			return ok
		})
	})
}

var fieldLabels = map[string]string{
	"Name":               "Name",
	"City":               "City",
	"State":              "State",
	"Address":            "Address",
	"Phone":              "Phone",
	"ImageLink":          "Image link",
	"Genres":             "Genres",
	"FacebookLink":       "Facebook link",
	"WebsiteLink":        "Website link",
	"SeekingDescription": "Seeking description",
	"ArtistID":           "Artist ID",
	"VenueID":            "Venue ID",
	"StartTime":          "Start time",
}

// Messages turns a binding error into messages fit for the form page.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"The form could not be read. Check the values and try again."}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	label, ok := fieldLabels[name]
	if !ok {
		label = name
	}
	switch fe.Tag() {
	case "required", "min", "notblank":
		return label + " is required."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "url":
		return label + " must be a valid URL."
	case "phone":
		return label + " must look like 555-555-5555."
	case "genre":
		return fmt.Sprintf("%q is not a known genre.", fe.Value())
	case "state":
		return fmt.Sprintf("%q is not a known state.", fe.Value())
	}
	return label + " is invalid."
}
