package app

import (
	"timebill-api/config"
	"timebill-api/ent"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	EntClient   *ent.Client
	RedisClient *redis.Client
	Validator   *validator.Validate
}
