package models

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance used by all model Validate methods.
var validate = validator.New()
