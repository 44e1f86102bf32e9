package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"arches/config"
	"arches/internal/delivery/http/response"
	"arches/internal/delivery/http/validator"
	"arches/internal/usecase"
)

const tokenTypeBearer = "Bearer"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler handles account registration and session cookies.
type AuthHandler struct {
	userUC       usecase.UserUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:       params.UserUC,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.Auth.CookieSecure,
		logger:       params.Logger,
	}
}

// CredentialsRequest is accepted as JSON or as an HTML form post.
type CredentialsRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AuthResponse carries the issued access token.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "username and password are required", validator.FieldErrors(err))
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.issueSession(c, http.StatusCreated, output)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "username and password are required", validator.FieldErrors(err))
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.issueSession(c, http.StatusOK, output)
}

// Logout clears the session cookie. Bearer tokens stay valid until they expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func (h *AuthHandler) issueSession(c echo.Context, status int, output *usecase.AuthOutput) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.AccessToken,
		Path:     "/",
		Expires:  output.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, status, AuthResponse{
		AccessToken: output.AccessToken,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   output.ExpiresAt,
		User: UserResponse{
			ID:       output.User.ID,
			Username: output.User.Username,
		},
	})
}
