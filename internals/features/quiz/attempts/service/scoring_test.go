package service

import (
	"math"
	"testing"

	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
)

func answers(results ...bool) []attemptModel.QuizUserAnswerModel {
	out := make([]attemptModel.QuizUserAnswerModel, 0, len(results))
	for _, r := range results {
		out = append(out, attemptModel.QuizUserAnswerModel{QuizUserAnswerIsCorrect: r})
	}
	return out
}

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name          string
		total         int
		answers       []attemptModel.QuizUserAnswerModel
		wantScore     float64
		wantCorrect   int
		wantIncorrect int
	}{
		{
			name:          "all correct",
			total:         10,
			answers:       answers(true, true, true, true, true, true, true, true, true, true),
			wantScore:     100.0,
			wantCorrect:   10,
			wantIncorrect: 0,
		},
		{
			name:          "eight of ten",
			total:         10,
			answers:       answers(true, true, true, true, true, true, true, true, false, false),
			wantScore:     80.0,
			wantCorrect:   8,
			wantIncorrect: 2,
		},
		{
			name:          "unanswered questions lower the score",
			total:         10,
			answers:       answers(true, true, true),
			wantScore:     30.0,
			wantCorrect:   3,
			wantIncorrect: 0,
		},
		{
			name:          "no answers",
			total:         10,
			answers:       nil,
			wantScore:     0.0,
			wantCorrect:   0,
			wantIncorrect: 0,
		},
		{
			name:          "zero questions",
			total:         0,
			answers:       nil,
			wantScore:     0.0,
			wantCorrect:   0,
			wantIncorrect: 0,
		},
		{
			name:          "fractional score is not rounded",
			total:         3,
			answers:       answers(true, false, false),
			wantScore:     100.0 / 3.0,
			wantCorrect:   1,
			wantIncorrect: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, correct, incorrect := ComputeScore(tc.total, tc.answers)
			if math.Abs(score-tc.wantScore) > 1e-9 {
				t.Errorf("score = %v, want %v", score, tc.wantScore)
			}
			if correct != tc.wantCorrect {
				t.Errorf("correct = %d, want %d", correct, tc.wantCorrect)
			}
			if incorrect != tc.wantIncorrect {
				t.Errorf("incorrect = %d, want %d", incorrect, tc.wantIncorrect)
			}
		})
	}
}
