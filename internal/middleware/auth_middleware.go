package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// AuthMiddleware verifies an HS256 bearer token issued by the identity
// service and exposes the caller's employee id and role.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		employeeID, ok := employeeIDClaim(claims)
		if !ok {
			abortWith(c, ErrMissingClaim)
			return
		}
		role, _ := claims["role"].(string)
		if role == "" {
			abortWith(c, ErrMissingClaim)
			return
		}

		c.Set(ContextEmployeeID, employeeID)
		c.Set(ContextRole, role)
		c.Request = c.Request.WithContext(contextutil.WithActorID(c.Request.Context(), employeeID))

		c.Next()
	}
}

// employeeIDClaim accepts the id either as a JSON number or a numeric string.
func employeeIDClaim(claims jwt.MapClaims) (int64, bool) {
	switch v := claims["employee_id"].(type) {
	case float64:
		if v <= 0 || v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// EmployeeIDFrom returns the authenticated employee id set by AuthMiddleware.
func EmployeeIDFrom(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextEmployeeID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
