package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	gverifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sikshyalaya_backend/internals/configs"
	"sikshyalaya_backend/internals/constants"
	"sikshyalaya_backend/internals/features/users/dto"
	"sikshyalaya_backend/internals/features/users/model"
	helper "sikshyalaya_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

func signAccessToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func authResponse(user *model.UserModel, token string) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken: token,
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		Role:        user.UserRole,
	}
}

// 🟢 REGISTER
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing model.UserModel
	if err := ctrl.DB.First(&existing, "user_email = ?", email).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     body.Name,
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleUser,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", authResponse(&user, token))
}

// 🟢 LOGIN
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	return helper.Success(c, "Logged in", authResponse(&user, token))
}

// 🟢 GOOGLE LOGIN: verify the client-obtained ID token, then find or
// create the account.
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	v := gverifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Printf("[WARN] google id token rejected: %v", err)
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	claims, err := gverifier.Decode(body.IDToken)
	if err != nil || claims.Email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(claims.Email)
	var user model.UserModel
	err = ctrl.DB.First(&user, "user_email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		googleID := claims.Sub
		user = model.UserModel{
			UserName:     claims.Name,
			UserEmail:    email,
			UserGoogleID: &googleID,
			UserRole:     constants.RoleUser,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	return helper.Success(c, "Logged in with Google", authResponse(&user, token))
}

// 🟢 ME: current profile for the dashboard header.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User not found")
	}
	return helper.Success(c, "Profile fetched", user)
}
