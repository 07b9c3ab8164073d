package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"okaziyo-api-io/api/pkg/models"
	"okaziyo-api-io/api/pkg/util"
)

const AccessTokenExpirationTime = time.Minute * 15
const RefreshTokenExpirationTime = 7 * 24 * time.Hour

// JWTClaim is the authenticated identity carried by access tokens.
type JWTClaim struct {
	Id    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT issues the access token for a new user session.
func GenerateJWT(id, email, name string, role models.UserRole) (string, int64, error) {
	expirationTime := time.Now().Add(AccessTokenExpirationTime)
	jwtKey := util.LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:    id,
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// GenerateRefreshJWT issues the long-lived refresh token.
func GenerateRefreshJWT(id, email, name string, role models.UserRole) (string, error) {
	expirationTime := time.Now().Add(RefreshTokenExpirationTime)
	jwtKey := util.LoadEnvFor("REFRESH_SECRET")

	claims := JWTClaim{
		Id:    id,
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func parseToken(signedToken, key string) (*JWTClaim, error) {
	// Expired and exp-less tokens are both rejected by the parser.
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(key), nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok {
		return nil, errors.New("couldn't parse claims")
	}

	return claims, nil
}

// ValidateToken checks an access token and returns its claims.
func ValidateToken(signedToken string) (*JWTClaim, error) {
	return parseToken(signedToken, util.LoadEnvFor("SECRET"))
}

// ValidateRefreshToken checks a refresh token and returns its claims.
func ValidateRefreshToken(signedToken string) (*JWTClaim, error) {
	return parseToken(signedToken, util.LoadEnvFor("REFRESH_SECRET"))
}

// ExtractToken pulls the bearer token off the request.
func ExtractToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	return strings.TrimPrefix(tokenString, "Bearer ")
}

// ExtractTokenID resolves the authenticated user id from the request
// token.
func ExtractTokenID(c *gin.Context) (primitive.ObjectID, error) {
	claims, err := ValidateToken(ExtractToken(c))
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, err := primitive.ObjectIDFromHex(claims.Id)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid user id")
	}

	return id, nil
}
