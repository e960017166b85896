package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/cookie-sid/job-application-tracker/internal/validation"
)

// All error bodies share the {"success":false,"message":...} shape;
// validation failures additionally carry a per-field errors list.

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

func serverError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

func failValidation(c *gin.Context, verr *validation.Error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  verr.Fields,
	})
}

// failBinding reports gin binding failures in the same shape as the
// aggregated auth validation, listing every offending field.
func failBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]validation.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = validation.FieldError{
				Field:   fe.Field(),
				Message: "failed validation on '" + fe.Tag() + "'",
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  fields,
		})
		return
	}
	fail(c, http.StatusBadRequest, "Invalid request body")
}
