package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kamp-org/kamp_backend/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators installs the enum validators used in request binding tags.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("applicant_type", func(fl validator.FieldLevel) bool {
			return domain.ApplicantType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("involvement_type", func(fl validator.FieldLevel) bool {
			return domain.InvolvementType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseApplicationStatus(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("member_role", func(fl validator.FieldLevel) bool {
			return domain.MemberRole(fl.Field().String()).IsValid()
		})
		// Admin accounts are never self-registered.
		_ = v.RegisterValidation("user_type", func(fl validator.FieldLevel) bool {
			t := domain.Role(fl.Field().String())
			return t == domain.RoleOrganization || t == domain.RoleIndividual
		})
	})
}
