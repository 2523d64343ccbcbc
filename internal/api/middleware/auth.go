package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/pkg/jwthelper"
)

const principalKey = "principal"

var (
	errMissingToken = errors.New("missing bearer token")
	errNotAdmin     = errors.New("you do not have permission to perform this action")
)

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

// VerifyJWT rejects requests without a valid bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !a.authenticate(ctx, true) {
			return
		}

		ctx.Next()
	}
}

// OptionalJWT lets anonymous requests through but still rejects a bad token.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !a.authenticate(ctx, false) {
			return
		}

		ctx.Next()
	}
}

func (a *Authenticator) authenticate(ctx *gin.Context, required bool) bool {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		if required {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return false
		}

		return true
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
		return false
	}

	claims, err := jwthelper.ParseToken(a.key, token)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return false
	}

	ctx.Set(principalKey, domain.Principal{UserID: claims.UserID, IsStaff: claims.IsStaff})

	return true
}

// RequireAdmin must run after VerifyJWT.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := GetPrincipal(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}
		if !principal.IsStaff {
			response.RenderErr(ctx, response.ErrPermissionDenied(errNotAdmin))
			return
		}

		ctx.Next()
	}
}

// GetPrincipal returns the caller authenticated by VerifyJWT or OptionalJWT.
func GetPrincipal(ctx *gin.Context) (domain.Principal, bool) {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}

	principal, ok := value.(domain.Principal)

	return principal, ok
}
