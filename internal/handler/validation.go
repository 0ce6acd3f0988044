package handler

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"blog-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Usernames are alphanumeric with inner underscores/hyphens; length is enforced
// separately by the min/max binding tags.
var usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*[A-Za-z0-9]$`)

// RegisterCustomValidators installs the username and strongpassword rules on
// Gin's binding engine. Call once at startup before serving.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
}

// isStrongPassword requires at least 8 characters with at least one lowercase
// letter, one uppercase letter, one digit, and one symbol.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// bindJSON binds the request body and reports failures itself. Validation rule
// failures get field-level details; anything else (malformed JSON, wrong types)
// is a plain 400. Returns false when the request has already been answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]utils.FieldError, len(fieldErrs))
		for i, fe := range fieldErrs {
			details[i] = utils.FieldError{
				Field: strings.ToLower(fe.Field()),
				Error: validationMessage(fe),
			}
		}
		utils.ValidationErrorResponse(c, details)
	} else {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
	}
	return false
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	case "email":
		return "Invalid email"
	case "min", "max":
		if field == "username" {
			return "Username must be between 5 to 20 characters long"
		}
		if fe.Tag() == "max" {
			return fmt.Sprintf("%s cannot be more than %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "username":
		return "Username can only contain letters, numbers, underscores, and hyphens, and must start and end with a letter or number"
	case "strongpassword":
		return "Password must contain at least 1 lowercase letter, 1 uppercase letter, 1 number, 1 special character, and 8 characters in total."
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parseIDParam parses a numeric path parameter, answering the request with a 400
// that echoes the offending value when it is malformed.
func parseIDParam(c *gin.Context, name, label string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.InvalidIDResponse(c, "Invalid "+label+" ID", raw)
		return 0, false
	}
	return uint(id), true
}
