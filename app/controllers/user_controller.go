package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/chronoluxe/app/requests"
	"github.com/shashiranjanraj/chronoluxe/app/services"
	"github.com/shashiranjanraj/chronoluxe/pkg/auth"
	"github.com/shashiranjanraj/chronoluxe/pkg/bind"
	"github.com/shashiranjanraj/chronoluxe/pkg/response"
)

// UserController exposes registration, login, and profile endpoints.
type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req requests.RegisterUser
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := c.service.Register(req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, user, "User registered successfully")
}

func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req requests.LoginUser
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, token, err := c.service.Login(req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, map[string]interface{}{
		"user":  user,
		"token": token,
	}, "Login successful")
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users := c.service.ListUsers()
	response.List(w, users, len(users))
}

func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := c.service.GetProfile(chi.URLParam(r, "id"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, user)
}

func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req requests.UpdateProfile
	if err := bind.JSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	user, err := c.service.UpdateProfile(chi.URLParam(r, "id"), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OKMessage(w, user, "Profile updated successfully")
}

// Me resolves the bearer token (validated by the auth middleware) to the
// caller's own profile.
func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromCtx(r.Context())
	if !ok {
		response.Fail(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}

	user, err := c.service.GetProfile(claims.UserID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, user)
}
