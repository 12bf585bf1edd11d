package service

import (
	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
)

// ComputeScore calcula a nota final da tentativa a partir das respostas
// registradas. Função pura: sem respostas (ou sem perguntas) a nota é 0,
// nunca divisão por zero. A nota não é arredondada aqui; quem exibe arredonda.
func ComputeScore(totalQuestions int, answers []attemptModel.QuizUserAnswerModel) (score float64, correct int, incorrect int) {
	for _, ans := range answers {
		if ans.QuizUserAnswerIsCorrect {
			correct++
		} else {
			incorrect++
		}
	}
	if totalQuestions <= 0 {
		return 0, correct, incorrect
	}
	score = float64(correct) / float64(totalQuestions) * 100
	return score, correct, incorrect
}
