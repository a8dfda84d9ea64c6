package middleware

import (
	"github.com/gin-gonic/gin"

	"taskapi/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves the Accept-Language header to one of the
// supported languages and stores it on the context.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
