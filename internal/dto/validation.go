package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/doctrackph/doctrack-backend/internal/core/domain"
)

// init registers the custom binding rules used by the request types in
// this package.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("userrole", validUserRole)
}

// validUserRole accepts only the roles the register knows about.
func validUserRole(fl validator.FieldLevel) bool {
	switch domain.Role(fl.Field().String()) {
	case domain.RoleAdmin, domain.RoleStaff:
		return true
	}
	return false
}
