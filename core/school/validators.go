package school

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradecalc/core"
)

var (
	// custom validation tags & texts
	codeTag   = "code"
	codeText  = "only letters, digits, dashes and underscores are allowed"
	codeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

func init() {
	_ = core.Validate.RegisterValidation(codeTag, codeValidation)
	core.RegisterCustomTranslation(codeTag, codeText)
}

// Custom Validators

// codeValidation checks student, teacher and evaluation identifiers such as "S001" or "E-2".
func codeValidation(fl validator.FieldLevel) bool {
	return codeRegex.MatchString(fl.Field().String())
}
