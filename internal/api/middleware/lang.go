package middleware

import (
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"

	"shoe-design-api/internal/validation"
)

const translatorCtx = "trans"

// Lang picks the validation-message translator from the `lang` query
// parameter, then the `lang` header, then Accept-Language.
func Lang(v *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := c.GetQuery("lang")
		if !ok || lang == "" {
			lang = c.GetHeader("lang")
		}
		if lang == "" {
			lang = firstLanguage(c.GetHeader("Accept-Language"))
		}
		c.Set(translatorCtx, v.Translator(lang))
		c.Next()
	}
}

// firstLanguage returns the first tag of an Accept-Language value, without its quality.
func firstLanguage(header string) string {
	for i, r := range header {
		if r == ',' || r == ';' {
			return header[:i]
		}
	}
	return header
}

// GetTranslator returns the translator chosen by Lang, or nil.
func GetTranslator(c *gin.Context) ut.Translator {
	if v, ok := c.Get(translatorCtx); ok {
		if trans, ok := v.(ut.Translator); ok {
			return trans
		}
	}
	return nil
}
