package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/request"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/config"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/domain"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/pkg/jwthelper"
	"github.com/yizeng/gab/gin/gorm/airport-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf     *config.APIConfig
	svc      AuthService
	rejected *prometheus.CounterVec
}

// NewAuthHandler builds the signup and login handlers. rejected counts failed
// logins by reason and may be nil.
func NewAuthHandler(conf *config.APIConfig, svc AuthService, rejected *prometheus.CounterVec) *AuthHandler {
	return &AuthHandler{
		conf:     conf,
		svc:      svc,
		rejected: rejected,
	}
}

// HandleSignup godoc
// @Summary      Signup a new user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.User
// @Failure      400      {object}   response.Err
// @Failure      429      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewUser(user))
}

// HandleLogin godoc
// @Summary      Login with email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      429      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			if h.rejected != nil {
				h.rejected.WithLabelValues("wrong_credentials").Inc()
			}
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(
		[]byte(h.conf.JWTSigningKey),
		h.conf.JWTTTL,
		user.ID,
		user.IsStaff,
		ctx.Request.UserAgent(),
	)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.NewUser(user),
	})
}
