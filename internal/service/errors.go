package service

import "errors"

var (
	ErrEmailInUse          = errors.New("email already in use")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAssessmentNotFound  = errors.New("assessment not found")
	ErrAssessmentFinalized = errors.New("assessment already submitted")
	ErrForbidden           = errors.New("assessment belongs to another user")
	ErrUnknownQuestion     = errors.New("question is not part of the catalog")
	ErrInvalidAnswer       = errors.New("answer must be one of sim, parcial, nao, na")
	ErrNoResponses         = errors.New("no completed assessments yet")
)
