// Package model holds the request and response types shared by the
// service and handler layers.
package model

import "github.com/go-playground/validator/v10"

// validate is safe for concurrent use and caches struct metadata, so a
// single instance serves every request.
var validate = validator.New()
