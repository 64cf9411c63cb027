package handler

import (
	"regexp"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/service"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/logger"
	"github.com/debugg-er/zootube-api-sub000/internal/metrics"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var bearerPattern = regexp.MustCompile(`^Bearer [A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// Guard authenticates requests from the Authorization header. RequireAuth rejects
// unauthenticated requests; OptionalAuth lets them through without identity.
type Guard struct {
	tokens  service.TokenGenerator
	revoker service.TokenRevoker
	metrics *metrics.Recorder
	log     logrus.FieldLogger
}

func NewGuard(tokens service.TokenGenerator, revoker service.TokenRevoker, m *metrics.Recorder, log logrus.FieldLogger) *Guard {
	return &Guard{tokens: tokens, revoker: revoker, metrics: m, log: log.WithField("component", "guard")}
}

func (g *Guard) RequireAuth(c *fiber.Ctx) error {
	if err := g.authenticate(c); err != nil {
		g.metrics.AuthRejected(rejectReason(err))
		return err
	}
	return c.Next()
}

// OptionalAuth never fails the request, including when the revocation store is down.
func (g *Guard) OptionalAuth(c *fiber.Ctx) error {
	if err := g.authenticate(c); err != nil && !apperror.IsKind(err, apperror.KindUnauthorized) {
		logger.FromCtx(c, g.log).WithError(err).Warn("optional auth skipped")
	}
	return c.Next()
}

func (g *Guard) authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperror.ErrMissingToken
	}
	if !bearerPattern.MatchString(header) {
		return apperror.ErrMalformedToken
	}
	token := header[len(constant.DefaultTokenType)+1:]

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return err
	}

	revoked, err := g.revoker.IsRevoked(c.UserContext(), token)
	if err != nil {
		return apperror.Storage("check revocation", err)
	}
	if revoked {
		return apperror.ErrRevokedToken
	}

	c.Locals(constant.LocalsClaims, claims)
	c.Locals(constant.LocalsToken, token)
	c.Locals(constant.LocalsUserID, claims.UserID())
	return nil
}

func rejectReason(err error) string {
	switch err {
	case apperror.ErrMissingToken:
		return "missing"
	case apperror.ErrMalformedToken:
		return "malformed"
	case apperror.ErrExpiredToken:
		return "expired"
	case apperror.ErrRevokedToken:
		return "revoked"
	case apperror.ErrInvalidToken:
		return "invalid"
	default:
		return "error"
	}
}

// UserID returns the authenticated user id, or "" when the request is anonymous.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(constant.LocalsUserID).(string)
	return id
}

// Token returns the raw bearer token of the authenticated request.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals(constant.LocalsToken).(string)
	return token
}
