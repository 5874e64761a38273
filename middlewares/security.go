package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"github.com/yeremiapane/tailor-records/utils"
)

// SecurityHeaders sets the usual hardening headers. The CSP allows inline
// script and style because the root page ships them inline.
func SecurityHeaders(isProduction bool) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
		IsDevelopment:         !isProduction,
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			utils.ErrorLogger.Errorf("secure headers blocked request: %v", err)
			c.Abort()
			return
		}
		c.Next()
	}
}
