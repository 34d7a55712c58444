package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"codeword/internal/game"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	maxGameNameLength    = 80
	maxDescriptionLength = 500
	maxWordLength        = 40
	maxNotesLength       = 500
	minCodeLength        = 4
	maxCodeLength        = 8
	maxDurationHours     = 24 * 30
)

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("gamename", func(fl validator.FieldLevel) bool {
			_, err := validateGameName(fl.Field().String())
			return err == nil
		})
		_ = engine.RegisterValidation("joincode", func(fl validator.FieldLevel) bool {
			return validateJoinCode(fl.Field().String()) == nil
		})
		_ = engine.RegisterValidation("gameword", func(fl validator.FieldLevel) bool {
			_, err := validateWord(fl.Field().String())
			return err == nil
		})
	})
}

func validateGameName(name string) (string, error) {
	trimmed := normalizeText(name)
	if trimmed == "" {
		return "", errors.New("game name is required")
	}
	if len(trimmed) > maxGameNameLength {
		return "", fmt.Errorf("game name must be %d characters or fewer", maxGameNameLength)
	}
	return trimmed, nil
}

func validateJoinCode(code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) < minCodeLength || len(normalized) > maxCodeLength {
		return errors.New("join code has the wrong length")
	}
	if !game.ValidCode(normalized) {
		return errors.New("join code contains invalid characters")
	}
	return nil
}

func validateWord(word string) (string, error) {
	trimmed := normalizeText(word)
	if trimmed == "" {
		return "", errors.New("word is required")
	}
	if len(trimmed) > maxWordLength {
		return "", fmt.Errorf("word must be %d characters or fewer", maxWordLength)
	}
	if strings.ContainsAny(trimmed, " \t") {
		return "", errors.New("word must be a single word")
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}
