package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordRolePredictor_DevOpsResume(t *testing.T) {
	predictor := NewKeywordRolePredictor()

	text := "Infrastructure engineer experienced with docker, kubernetes, jenkins, terraform and linux. Built CI/CD pipelines on AWS."
	predictions := predictor.Predict(text)

	assert.Len(t, predictions, 3)
	assert.Equal(t, "DevOps Engineer", predictions[0].Role)
	assert.Greater(t, predictions[0].Confidence, predictions[1].Confidence)
}

func TestKeywordRolePredictor_FrontendLeansWeb(t *testing.T) {
	predictor := NewKeywordRolePredictor()

	text := "Built responsive pages with html, css, javascript and vue. Strong ui/ux sense."
	predictions := predictor.Predict(text)

	assert.Equal(t, "Web Developer", predictions[0].Role)
}

func TestKeywordRolePredictor_EmptyText(t *testing.T) {
	predictor := NewKeywordRolePredictor()

	predictions := predictor.Predict("")

	assert.Len(t, predictions, 3)
	for _, p := range predictions {
		assert.Equal(t, 0.0, p.Confidence)
	}
	// Zero-hit ties fall back to alphabetical order.
	assert.Equal(t, "Data Analyst", predictions[0].Role)
}

func TestKeywordRolePredictor_ConfidencesSumWithinTop(t *testing.T) {
	predictor := NewKeywordRolePredictor()

	predictions := predictor.Predict("python java docker sql excel tableau")

	assert.LessOrEqual(t, len(predictions), 3)
	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].Confidence, predictions[i].Confidence)
	}
	for _, p := range predictions {
		assert.GreaterOrEqual(t, p.Confidence, 0.0)
		assert.LessOrEqual(t, p.Confidence, 100.0)
	}
}
