package usecase

import (
	"strconv"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"bookrack/internal/identity/entity"
	"bookrack/internal/pkg/jwt"
)

func (s *Usecase) issueAccessToken(user *entity.User) (string, error) {
	now := s.clock.Now()

	return s.jwt.Generate(&jwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    s.cfg.GetString("jwt.issuer"),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.cfg.GetHour("jwt.access_token_ttl_hours"))),
		},
		Email: user.Email,
	})
}
