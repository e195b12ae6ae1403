package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
)

const tokenTTL = 24 * time.Hour

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
	now    func() time.Time
}

func New(conf *config.Auth) (port.TokenService, error) {
	parser := paseto.NewParser()

	key := paseto.NewV4SymmetricKey()
	if conf != nil && conf.TokenKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("token key: %w", err)
		}
	}

	s := PasetoToken{
		parser: &parser,
		key:    &key,
		now:    time.Now,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(userID uint64) (string, error) {
	token := paseto.NewToken()
	now := p.now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(tokenTTL))

	payload := port.TokenPayload{UserID: userID}
	err := token.Set("payload", payload)
	if err != nil {
		return "", fmt.Errorf("set token payload: %w", err)
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if payload.UserID == 0 {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
