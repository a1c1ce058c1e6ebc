package handler

import (
	"bytes"
	"errors"
	"mime"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details []ValidationError `json:"details,omitempty"`
}

func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	default:
		return "Invalid value"
	}
}

func respondWithError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(errorResponse{
		Error:   utils.StatusMessage(code),
		Message: message,
	})
}

func respondWithValidationError(c *fiber.Ctx, errs []ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
		Error:   utils.StatusMessage(fiber.StatusBadRequest),
		Message: "Invalid request data",
		Details: errs,
	})
}

// requireJSON rejects bodies whose media type is not application/json.
// Parameters such as charset are ignored.
func requireJSON(c *fiber.Ctx) error {
	mediaType, _, err := mime.ParseMediaType(c.Get(fiber.HeaderContentType))
	if err != nil || mediaType != fiber.MIMEApplicationJSON {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, "Content-Type must be "+fiber.MIMEApplicationJSON)
	}
	return nil
}

// decodeObject parses a JSON object body into out.
func decodeObject(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || body[0] != '{' {
		return fiber.NewError(fiber.StatusBadRequest, "Request body must be a JSON object")
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// ErrorHandler renders errors returned by handlers and middleware.
// Anything that is not a *fiber.Error is an unexpected fault and becomes a 500.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An unexpected error occurred"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.WithError(err).
				WithField("method", c.Method()).
				WithField("path", c.Path()).
				Error("request failed")
		}
		return respondWithError(c, code, message)
	}
}
