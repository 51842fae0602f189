package service

import "errors"

var (
	// ErrBaseURL is returned when the configured base URL is unusable.
	ErrBaseURL = errors.New("service: base url must be an absolute http(s) url")
	// ErrNotPDF is returned when a report response is neither a PDF nor a
	// decodable error payload.
	ErrNotPDF = errors.New("service: report response is not a PDF document")
	// ErrSmallModelWorkbook is returned when an uploaded workbook is an
	// original small-model sheet set, which the service cannot read.
	ErrSmallModelWorkbook = errors.New("service: small-model workbook upload is not supported")
	// ErrNoPayload is returned when a nil payload is submitted.
	ErrNoPayload = errors.New("service: payload is required")
	// ErrEmptyWorkbook is returned for zero-length uploads.
	ErrEmptyWorkbook = errors.New("service: workbook is empty")
)
