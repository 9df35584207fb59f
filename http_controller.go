package worldclock

import (
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
)

// AuthResponse is the envelope every endpoint answers with
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type AuthControllerRoutes struct {
	Home             string
	Register         string
	Login            string
	Profile          string
	AddZones         string
	DeleteZones      string
	Toggle12Hour     string
	ToggleDateFormat string
}

type AuthController struct {
	Debug  bool
	Logger Logger
	Repo   RepositoryManager
	Auther Authenticator
	Prefs  *PreferenceService
	Routes *AuthControllerRoutes
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Routes: &AuthControllerRoutes{
			Home:             "/",
			Register:         "/register",
			Login:            "/login",
			Profile:          "/profile",
			AddZones:         "/addzones",
			DeleteZones:      "/deleteZones",
			Toggle12Hour:     "/toggle12hour",
			ToggleDateFormat: "/toggledateformat",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Prefs == nil {
		c.Prefs = NewPreferenceService(c.Repo.Users())
	}

	return c
}

func WithControllerDebug(debug bool) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Debug = debug
		return c
	}
}

func WithControllerLogger(l Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = l
		return c
	}
}

func WithControllerRepo(repo RepositoryManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Repo = repo
		return c
	}
}

func WithControllerAuthenticator(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithControllerPreferences(prefs *PreferenceService) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Prefs = prefs
		return c
	}
}

// RegisterAuthRoutes mounts the account and preference endpoints. The
// protected middleware guards everything that reads the bearer token.
func RegisterAuthRoutes[T any](app router.Router[T], controller *AuthController, protected router.MiddlewareFunc) {
	app.Get(controller.Routes.Home, controller.Home).
		SetName("home.get")

	app.Post(controller.Routes.Register, controller.RegistrationCreate).
		SetName("register.post")

	app.Post(controller.Routes.Login, controller.LoginPost).
		SetName("sign-in.post")

	app.Get(controller.Routes.Profile, controller.ProfileShow, protected).
		SetName("profile.get")

	app.Post(controller.Routes.AddZones, controller.AddZones, protected).
		SetName("zones-add.post")

	app.Post(controller.Routes.DeleteZones, controller.DeleteZones, protected).
		SetName("zones-delete.post")

	app.Post(controller.Routes.Toggle12Hour, controller.Toggle12Hour, protected).
		SetName("toggle-12hour.post")

	app.Post(controller.Routes.ToggleDateFormat, controller.ToggleDateFormat, protected).
		SetName("toggle-dateformat.post")
}

func (a *AuthController) Home(ctx router.Context) error {
	return ctx.Status(http.StatusOK).SendString("Welcome to the server")
}

// RegisterPayload is the registration body
type RegisterPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required.Error("Please provide an email"),
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required.Error("Please provide a password"),
		),
	)
}

func (a *AuthController) RegistrationCreate(ctx router.Context) error {
	payload := new(RegisterPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("register user parse payload: %v", err)
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("register user validate payload: %v", err)
		return ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	if a.Debug {
		fmt.Println("======= AUTH REGISTER ===")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=========================")
	}

	var user *User
	req := RegisterUserMessage{
		Email:    payload.Email,
		Password: payload.Password,
		OnResponse: func(u *User) {
			user = u
		},
	}

	registerUser := RegisterUserHandler{repo: a.Repo}
	if err := registerUser.Execute(ctx.Context(), req); err != nil {
		a.Logger.Error("register user error: %v", err)
		return a.renderError(ctx, err)
	}

	token, err := a.Auther.IssueToken(IdentityFromUser(user))
	if err != nil {
		a.Logger.Error("register user issue token: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "User is created successfully",
		User:    user,
		Token:   "Bearer " + token,
	})
}

// LoginPayload is the login body
type LoginPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// GetIdentifier returns the identifier
func (r LoginPayload) GetIdentifier() string {
	return r.Email
}

// GetPassword will return the password
func (r LoginPayload) GetPassword() string {
	return r.Password
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required.Error("Please provide an email"),
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required.Error("Please provide a password"),
		),
	)
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload: %v", err)
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	token, err := a.Auther.Login(ctx.Context(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		a.Logger.Error("login error: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "User is logged in successfully",
		Token:   "Bearer " + token,
	})
}

func (a *AuthController) ProfileShow(ctx router.Context) error {
	user, ok := UserFromRouterContext(ctx)
	if !ok {
		return a.renderError(ctx, ErrIdentityNotFound)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		User:    user,
	})
}

// ZonePayload carries the zone for both add and delete
type ZonePayload struct {
	NewTimeZone string `form:"newTimeZone" json:"newTimeZone"`
}

// Validate will run validation rules
func (r ZonePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.NewTimeZone,
			validation.Required.Error("Please provide a time zone"),
		),
	)
}

func (a *AuthController) AddZones(ctx router.Context) error {
	user, ok := UserFromRouterContext(ctx)
	if !ok {
		return a.renderError(ctx, ErrIdentityNotFound)
	}

	payload := new(ZonePayload)
	if err := ctx.Bind(payload); err != nil {
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	updated, err := a.Prefs.AddTimeZone(ctx.Context(), user.ID, payload.NewTimeZone)
	if err != nil {
		a.Logger.Error("add time zone error: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Time zone successfully added",
		User:    updated,
	})
}

func (a *AuthController) DeleteZones(ctx router.Context) error {
	user, ok := UserFromRouterContext(ctx)
	if !ok {
		return a.renderError(ctx, ErrIdentityNotFound)
	}

	payload := new(ZonePayload)
	if err := ctx.Bind(payload); err != nil {
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	updated, err := a.Prefs.RemoveTimeZone(ctx.Context(), user.ID, payload.NewTimeZone)
	if err != nil {
		a.Logger.Error("delete time zone error: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Time zone successfully deleted",
		User:    updated,
	})
}

// Toggle12HourPayload carries the hour format flag. The field is typed any
// so any value other than boolean true coerces to false.
type Toggle12HourPayload struct {
	Is12Hour any `form:"is12Hour" json:"is12Hour"`
}

// ToggleDateFormatPayload carries the date format flag
type ToggleDateFormatPayload struct {
	DateFormat any `form:"dateFormat" json:"dateFormat"`
}

func (a *AuthController) Toggle12Hour(ctx router.Context) error {
	user, ok := UserFromRouterContext(ctx)
	if !ok {
		return a.renderError(ctx, ErrIdentityNotFound)
	}

	payload := new(Toggle12HourPayload)
	if err := ctx.Bind(payload); err != nil {
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	value := payload.Is12Hour == true

	updated, err := a.Prefs.SetIs12Hour(ctx.Context(), user.ID, value)
	if err != nil {
		a.Logger.Error("toggle 12 hour error: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Is12Hour format is successfully updated",
		User:    updated,
	})
}

func (a *AuthController) ToggleDateFormat(ctx router.Context) error {
	user, ok := UserFromRouterContext(ctx)
	if !ok {
		return a.renderError(ctx, ErrIdentityNotFound)
	}

	payload := new(ToggleDateFormatPayload)
	if err := ctx.Bind(payload); err != nil {
		return a.renderError(ctx, errors.Wrap(err, errors.CategoryBadInput, "Failed to parse body"))
	}

	value := payload.DateFormat == true

	updated, err := a.Prefs.SetDateFormat(ctx.Context(), user.ID, value)
	if err != nil {
		a.Logger.Error("toggle date format error: %v", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "DateFormat is successfully updated",
		User:    updated,
	})
}

// renderError maps the error taxonomy to HTTP statuses. Anything without a
// category renders as a generic 500 so internals never reach the client.
func (a *AuthController) renderError(ctx router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		a.Logger.Error("unhandled controller error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Something broke",
		})
	}

	status := http.StatusInternalServerError
	message := richErr.Message

	switch richErr.Category {
	case errors.CategoryValidation, errors.CategoryBadInput, errors.CategoryConflict, errors.CategoryNotFound:
		status = http.StatusBadRequest
	case errors.CategoryAuth:
		status = http.StatusUnauthorized
	default:
		message = "Something broke"
	}

	return ctx.JSON(status, AuthResponse{
		Success: false,
		Message: message,
	})
}
