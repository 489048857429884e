package util

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
)

var alphaNumSpaceRegex = regexp.MustCompile(`^[A-Za-z0-9\s]*$`)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("alphanumspace", alphaNumSpace)
	validate.RegisterValidation("season", season)

	return validate
}

// alphaNumSpace only allows letters, digits and whitespace. This whitelist is what stands
// between request input and the grades queries, on top of parameter binding.
func alphaNumSpace(fl validator.FieldLevel) bool {
	return alphaNumSpaceRegex.MatchString(fl.Field().String())
}

func season(fl validator.FieldLevel) bool {
	return lo.Contains(constant.Seasons, fl.Field().String())
}
