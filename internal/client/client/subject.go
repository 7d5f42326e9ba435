package client

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// ProfileSubject returns the numeric "sub" claim of token, or fallback
// when the token is not a JWT or carries no usable subject. The signature
// is not verified: the token is only ever checked by the server.
func ProfileSubject(token string, fallback int) int {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}

	id, err := subjectID(claims["sub"])
	if err != nil || id <= 0 {
		return fallback
	}
	return id
}

func subjectID(v any) (int, error) {
	switch s := v.(type) {
	case float64:
		return int(s), nil
	case string:
		return strconv.Atoi(s)
	default:
		return 0, fmt.Errorf("unsupported sub claim %T", v)
	}
}
