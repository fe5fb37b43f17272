// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"schoolhub/internal/delivery/api/middleware"
	"schoolhub/internal/delivery/api/response"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the /auth account endpoints.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CreateAccountRequest is the body of POST /auth/create_user.
// Missing credentials are left to the use case, which reports them like any other creation failure.
type CreateAccountRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IDNumber       string `json:"idNumber"`
	DateOfBirth    string `json:"dateOfBirth"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	Address        string `json:"address"`
	Role           string `json:"role"`
	Password       string `json:"password"`
	ProfilePicture []byte `json:"profilePicture"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /auth/update. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Role        *string `json:"role"`
	IDNumber    string  `json:"idNumber" validate:"required"`
}

// UploadPhotoRequest is the body of POST /auth/upload.
type UploadPhotoRequest struct {
	Image string `json:"image"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ProfileResponse is the data of GET /auth/getuser.
type ProfileResponse struct {
	Photo string        `json:"photo"`
	User  *UserResponse `json:"user"`
}

// CreateAccount handles POST /auth/create_user.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	user, err := h.accountUC.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IDNumber:     req.IDNumber,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Role:         entity.Role(req.Role),
		Password:     req.Password,
		ProfilePhoto: req.ProfilePicture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "User Created Successfully")
}

// Login handles POST /auth/login. The token is returned in the body and in the Authorization header.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+output.Token)
	c.Response().Header().Set(echo.HeaderAccessControlExposeHeaders, "*")

	return response.Success(c, http.StatusOK, &LoginResponse{
		Token: output.Token,
		User:  newUserResponse(output.User),
	}, "Login successful")
}

// UpdateProfile handles PUT /auth/update for the authenticated caller.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IDNumber:    req.IDNumber,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Update successful")
}

// UploadPhoto handles POST /auth/upload for the authenticated caller.
func (h *AccountHandler) UploadPhoto(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req UploadPhotoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	user, err := h.accountUC.UploadPhoto(c.Request().Context(), userID, &usecase.UploadPhotoInput{Image: req.Image})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User image updated!")
}

// GetProfile handles GET /auth/getuser for the authenticated caller.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	output, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &ProfileResponse{
		Photo: output.Photo,
		User:  newUserResponse(output.User),
	}, "User successfully retrieved")
}
