package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report json names (wallType)
// instead of Go field names (WallType).
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst. The returned error is
// ready to be written.
func bindJSON(c *gin.Context, dst any) *pkg.AppError {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request body", err, http.StatusBadRequest)
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return pkg.NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest).WithDetails(details)
}

// fieldPath drops the root type and embedded struct names from a validator
// namespace: "SubmitBudgetRequest.BudgetInputsRequest.area" becomes "area".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	kept := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 || p == "" {
			continue
		}
		if p[0] >= 'A' && p[0] <= 'Z' && i < len(parts)-1 {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
