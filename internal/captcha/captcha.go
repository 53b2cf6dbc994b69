package captcha

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	captchaKeyPrefix = "captcha"
	captchaTTL       = 10 * time.Minute

	imageHeight   = 80
	imageWidth    = 240
	captchaLength = 5
)

// Service issues digit captchas for the register/login endpoints. Answers
// live in Redis with a TTL, so multiple API instances can verify a
// challenge issued by any of them.
type Service struct {
	captcha *base64Captcha.Captcha
}

func NewService(redisClient *redis.Client) *Service {
	driver := base64Captcha.NewDriverDigit(imageHeight, imageWidth, captchaLength, 0.7, 80)
	store := &redisStore{client: redisClient}

	return &Service{
		captcha: base64Captcha.NewCaptcha(driver, store),
	}
}

// Generate returns a challenge ID and the base64-encoded PNG to display.
func (s *Service) Generate() (id string, image string, err error) {
	id, image, _, err = s.captcha.Generate()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate captcha: %w", err)
	}

	return id, image, nil
}

// Verify checks the answer and invalidates the challenge regardless of the
// outcome, so a challenge cannot be replayed.
func (s *Service) Verify(id string, answer string) bool {
	if id == "" || answer == "" {
		return false
	}

	return s.captcha.Verify(id, strings.ToLower(answer), true)
}

// redisStore adapts Redis to base64Captcha.Store.
type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Set(id string, value string) error {
	key := fmt.Sprintf("%s:%s", captchaKeyPrefix, id)
	return s.client.Set(context.Background(), key, strings.ToLower(value), captchaTTL).Err()
}

func (s *redisStore) Get(id string, clear bool) string {
	key := fmt.Sprintf("%s:%s", captchaKeyPrefix, id)

	value, err := s.client.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Error().Err(err).Msg("failed to read captcha answer from redis")
		}
		return ""
	}

	if clear {
		s.client.Del(context.Background(), key)
	}

	return value
}

func (s *redisStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)
	return stored != "" && stored == answer
}
