package validator

import (
	"regexp"
	"strings"

	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/modules/auth/dto"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegisterRequest(req *dto.RegisterRequest) controller.ValidationResult {
	var result controller.ValidationResult

	if strings.TrimSpace(req.Name) == "" {
		result.Add("name", "Name is required.")
	}
	if strings.TrimSpace(req.Email) == "" {
		result.Add("email", "Email is required.")
	} else if !emailPattern.MatchString(req.Email) {
		result.Add("email", "Email is not valid.")
	}
	if req.Password == "" {
		result.Add("password", "Password is required.")
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) controller.ValidationResult {
	var result controller.ValidationResult

	if strings.TrimSpace(req.Email) == "" {
		result.Add("email", "Email is required.")
	}
	if req.Password == "" {
		result.Add("password", "Password is required.")
	}

	return result
}
