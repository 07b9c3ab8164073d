package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"okaziyo-api-io/api/email"
	"okaziyo-api-io/api/internal/auth"
	"okaziyo-api-io/api/pkg/apperr"
	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

const resetTokenExpiration = time.Hour

// AuthController handles registration, sessions and password resets.
type AuthController struct {
	mail *email.WorkerPool
}

func InitAuthController(mail *email.WorkerPool) *AuthController {
	return &AuthController{mail: mail}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", errors.New("unable to hash and encrypt password")
	}

	return string(bytes), nil
}

func checkPassword(currentDigest, givenPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(currentDigest), []byte(givenPassword))
}

// Register creates a user account. New accounts get the User role;
// promotion to Creator or Admin happens through the admin user routes.
func (ac *AuthController) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.UserRegistrationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please fill all the fields")
			return
		}

		digest, err := hashPassword(body.Password)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err, "Failed to process password")
			return
		}

		user := models.User{
			ID:             primitive.NewObjectID(),
			Name:           body.Name,
			Email:          body.Email,
			PasswordDigest: digest,
			Role:           models.RoleUser,
			DateRegistered: time.Now(),
		}

		if _, err := UserCollection.InsertOne(ctx, user); err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "user email"), "An account with this email already exists")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Account created successfully", gin.H{
			"_id":   user.ID,
			"name":  user.Name,
			"email": user.Email,
		})
	}
}

func (ac *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.UserLoginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please fill all the fields")
			return
		}

		var user models.User
		err := UserCollection.FindOne(ctx, bson.M{"email": body.Email}).Decode(&user)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, "Invalid email or password")
			return
		}

		if err := checkPassword(user.PasswordDigest, body.Password); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, "Invalid email or password")
			return
		}

		token, expiresAt, err := auth.GenerateJWT(user.ID.Hex(), user.Email, user.Name, user.Role)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err, "Failed to create session")
			return
		}

		refreshToken, err := auth.GenerateRefreshJWT(user.ID.Hex(), user.Email, user.Name, user.Role)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err, "Failed to create session")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Logged in successfully", gin.H{
			"token":         token,
			"refresh_token": refreshToken,
			"expires_at":    expiresAt,
			"user": gin.H{
				"_id":   user.ID,
				"name":  user.Name,
				"email": user.Email,
				"role":  user.Role,
			},
		})
	}
}

// Logout blacklists the current access token.
func (ac *AuthController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			util.HandleError(c, http.StatusUnauthorized, errors.New("no access token"), "No access token provided")
			return
		}

		if err := auth.InvalidateToken(util.REDIS, tokenString); err != nil {
			util.HandleError(c, http.StatusInternalServerError, err, "Failed to log out")
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Logged out successfully", nil)
	}
}

// PasswordResetRequest mails a single-use token. The response does not
// reveal whether the email belongs to an account.
func (ac *AuthController) PasswordResetRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.PasswordResetRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please provide a valid email")
			return
		}

		var user models.User
		err := UserCollection.FindOne(ctx, bson.M{"email": body.Email}).Decode(&user)
		if err == nil {
			token := auth.GenerateSecureToken(32)
			digest, err := hashPassword(token)
			if err != nil {
				util.HandleError(c, http.StatusInternalServerError, err, "Failed to create reset token")
				return
			}

			now := time.Now()
			_, err = ResetTokenCollection.UpdateOne(ctx,
				bson.M{"user_uid": user.ID},
				bson.M{"$set": models.PasswordResetToken{
					UserID:      user.ID,
					TokenDigest: digest,
					CreatedAt:   now,
					ExpiresAt:   now.Add(resetTokenExpiration),
				}},
				// one live token per user
				optionsUpsert(),
			)
			if err != nil {
				util.HandleFailure(c, apperr.FromMongo(err, "reset token"), "Failed to create reset token")
				return
			}

			ac.mail.Enqueue(email.Job{
				Type: email.JobPasswordReset,
				Data: email.Data{Email: user.Email, Name: user.Name, Token: token},
			})
		}

		util.HandleSuccess(c, http.StatusOK, "If the email exists, a reset token has been sent", nil)
	}
}

func (ac *AuthController) PasswordReset() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()

		var body models.PasswordResetBody
		if err := c.ShouldBindJSON(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
		if err := Validate.Struct(&body); err != nil {
			util.HandleError(c, http.StatusBadRequest, err, "Please fill all the fields")
			return
		}

		var user models.User
		if err := UserCollection.FindOne(ctx, bson.M{"email": body.Email}).Decode(&user); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, "Invalid reset token")
			return
		}

		var reset models.PasswordResetToken
		if err := ResetTokenCollection.FindOne(ctx, bson.M{"user_uid": user.ID}).Decode(&reset); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, "Invalid reset token")
			return
		}

		if time.Now().After(reset.ExpiresAt) {
			util.HandleError(c, http.StatusUnauthorized, errors.New("token expired"), "Reset token has expired")
			return
		}
		if err := checkPassword(reset.TokenDigest, body.Token); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err, "Invalid reset token")
			return
		}

		digest, err := hashPassword(body.Password)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err, "Failed to process password")
			return
		}

		_, err = UserCollection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"password_digest": digest}})
		if err != nil {
			util.HandleFailure(c, apperr.FromMongo(err, "user"), "Failed to reset password")
			return
		}

		_, _ = ResetTokenCollection.DeleteOne(ctx, bson.M{"user_uid": user.ID})

		ac.mail.Enqueue(email.Job{
			Type: email.JobPasswordResetSuccess,
			Data: email.Data{Email: user.Email, Name: user.Name},
		})

		util.HandleSuccess(c, http.StatusOK, "Password reset successfully", nil)
	}
}
