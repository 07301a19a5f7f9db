package domain

import "errors"

var (
	// ErrInvalidDate marks a date string that is not a real YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyQuestion is returned when a question is missing or blank.
	ErrEmptyQuestion = errors.New("질문을 입력해주세요.")

	// ErrNoSummary is returned when there is no summary to analyze.
	ErrNoSummary = errors.New("분석할 데이터가 없습니다.")

	// ErrNotFound is returned by repositories when a row does not exist.
	ErrNotFound = errors.New("not found")
)
