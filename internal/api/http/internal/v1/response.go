package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func errorResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusBadRequest, getErrorStruct(code))
}

func errorResponseWithStatus(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// bindErrorResponse reports validator failures field by field and anything else as a malformed body.
func bindErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, InvalidRequestBodyCode)
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	response := ValidationErrorStruct{
		ErrorCode:    6000,
		ErrorMessage: "Validation error",
	}
	response.Errors = out
	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "number":
		return "This field must be numeric"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %v", value)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %v", value)
	case "phonenumber":
		return "Phone number must contain 6 to 15 digits"
	case "projectstatus":
		return "Status must be one of notStarted, inProgress, completed, delayed"
	case "projectcategory":
		return "Unknown project category"
	}
	return tag
}
