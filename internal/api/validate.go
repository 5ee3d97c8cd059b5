package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zhtrans "github.com/go-playground/validator/v10/translations/zh"

	"github.com/abhisek/budai/internal/auth"
)

// custom validation tags
const (
	phoneTag    = "cnphone"
	notBlankTag = "notblank"
)

var (
	validatorOnce sync.Once
	translator    ut.Translator
)

// setupValidator registers the custom tags and Chinese messages on gin's
// binding engine. Registration errors are programming errors and panic.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("api: unexpected binding engine %T", binding.Validator.Engine()))
		}

		locale := zh.New()
		var found bool
		translator, found = ut.New(locale, locale).GetTranslator("zh")
		if !found {
			panic("api: zh translator not found")
		}
		must("register zh translations", zhtrans.RegisterDefaultTranslations(v, translator))

		// Prefer the label tag, then the JSON name, in messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		must("register "+phoneTag, v.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
			return auth.ValidPhone(fl.Field().String())
		}))
		must("register "+notBlankTag, v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		}))

		registerMessage(v, phoneTag, "{0}格式不正确")
		registerMessage(v, notBlankTag, "{0}不能为空")
	})
}

func registerMessage(v *validator.Validate, tag, text string) {
	err := v.RegisterTranslation(tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, err := t.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
	must("translate "+tag, err)
}

func must(what string, err error) {
	if err != nil {
		panic(fmt.Sprintf("api: %s: %v", what, err))
	}
}

// bindMessage turns a binding failure into a user-facing message.
func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if translator != nil {
			return verrs[0].Translate(translator)
		}
		return verrs[0].Error()
	}
	return "请求格式不正确"
}
