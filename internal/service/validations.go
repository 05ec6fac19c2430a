package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ferrous/regiment/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("session_status", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case entity.StatusPending, entity.StatusInProgress, entity.StatusCompleted,
				entity.StatusUnfinished, entity.StatusMissed:
				return true
			}
			return false
		})
		validate.RegisterValidation("period_type", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "weekly" || value == "monthly"
		})
	})
}
