package dto

import (
	"testing"
)

func options(correctness ...bool) []CreateAnswerOptionRequest {
	out := make([]CreateAnswerOptionRequest, 0, len(correctness))
	for i, c := range correctness {
		out = append(out, CreateAnswerOptionRequest{
			QuizAnswerOptionText:      "opção",
			QuizAnswerOptionIsCorrect: c,
			QuizAnswerOptionOrder:     i + 1,
		})
	}
	return out
}

func TestCreateValidateCorrectOption(t *testing.T) {
	cases := []struct {
		name    string
		options []CreateAnswerOptionRequest
		wantErr bool
	}{
		{"exactly one correct", options(false, true, false, false), false},
		{"no correct option", options(false, false, false), true},
		{"two correct options", options(true, true, false), true},
		{"single correct option only", options(true), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CreateQuizQuestionRequest{Options: tc.options}
			err := req.ValidateCorrectOption()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestUpdateValidateCorrectOption(t *testing.T) {
	// sem opções no payload, o conjunto atual é mantido e não há o que validar
	req := UpdateQuizQuestionRequest{}
	if err := req.ValidateCorrectOption(); err != nil {
		t.Errorf("nil options should skip validation, got %v", err)
	}

	req = UpdateQuizQuestionRequest{Options: options(false, false)}
	if err := req.ValidateCorrectOption(); err == nil {
		t.Error("expected validation error for options without a correct one")
	}
}
