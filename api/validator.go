package main

import (
	"errors"
	"regexp"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

var validPriorities = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// validator collects validation failures in order; toError surfaces the
// first one as the response message.
type validator struct {
	errors []string
}

func newValidator() *validator {
	return &validator{}
}

func (v *validator) toError() error {
	if v == nil || len(v.errors) == 0 {
		return errors.New("")
	}
	return errors.New(v.errors[0])
}

func (v *validator) hasErrors() bool {
	return len(v.errors) != 0
}

func (v *validator) checkCond(cond bool, msg string) {
	if cond {
		return
	}
	v.errors = append(v.errors, msg)
}

func (v *validator) checkEmail(email string) {
	v.checkCond(emailRegexp.MatchString(email), "A valid email address is required")
}

func (v *validator) checkPriority(priority string) {
	v.checkCond(validPriorities[priority], "Invalid priority")
}
