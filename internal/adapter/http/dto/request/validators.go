package request

import (
	"reflect"
	"strings"
	"sync"

	"kiosk_quote/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the kiosk enum tags (tier, countertop, flooring,
// size_mode) to v and reports field errors by their json name.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	rules := map[string]func(string) bool{
		"tier":       func(s string) bool { return entities.Tier(s).Valid() },
		"countertop": func(s string) bool { return entities.CountertopMaterial(s).Valid() },
		"flooring":   func(s string) bool { return entities.FlooringMaterial(s).Valid() },
		"size_mode":  func(s string) bool { return entities.SizeMode(s).Valid() },
	}
	for tag, ok := range rules {
		ok := ok
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
		}); err != nil {
			return err
		}
	}
	return nil
}

// RegisterBindingValidators installs RegisterValidators on gin's binding engine.
// Safe to call more than once.
func RegisterBindingValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = RegisterValidators(v)
	})
	return err
}

// FieldNames lists the offending fields of a binding error, if it carries any.
func FieldNames(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		out = append(out, ns)
	}
	return out
}
