package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// pathInt reads a numeric path variable; the route regex guarantees digits.
func pathInt(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, utils.NewValidationError("Invalid path parameter", []dtos.ValidationErrorDetail{{
			Field:   name,
			Message: fmt.Sprintf("Field '%s' must be an integer", name),
			Code:    "validation_integer",
		}})
	}
	return v, nil
}

// pathID reads the {id} path variable, which must be >= 1.
func pathID(r *http.Request) (int64, error) {
	id, err := pathInt(r, "id")
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, utils.NewValidationError("Invalid path parameter", []dtos.ValidationErrorDetail{{
			Field:   "id",
			Message: "Field 'id' must be greater than or equal to 1",
			Code:    "validation_gte",
		}})
	}
	return id, nil
}
