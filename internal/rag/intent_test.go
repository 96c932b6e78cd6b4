package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntents_Pricing(t *testing.T) {
	intents := DetectIntents("How much does it cost?")

	assert.True(t, intents.WantsPricing)
	assert.False(t, intents.WantsServices)
	assert.False(t, intents.WantsProjects)
	assert.False(t, intents.WantsTech)
	assert.False(t, intents.WantsCompany)
	assert.False(t, intents.WantsTeam)
	assert.False(t, intents.WantsFAQ)
}

func TestDetectIntents_ServicesAndFAQ(t *testing.T) {
	intents := DetectIntents("What services do you offer?")

	assert.True(t, intents.WantsServices)
	assert.True(t, intents.WantsFAQ, "'do you' should set the FAQ flag")
	assert.False(t, intents.WantsPricing)
}

func TestDetectIntents_MultipleFlags(t *testing.T) {
	intents := DetectIntents("What is the pricing for a chatbot project built with React?")

	assert.True(t, intents.WantsPricing)
	assert.True(t, intents.WantsServices)
	assert.True(t, intents.WantsProjects)
	assert.True(t, intents.WantsTech)
}

func TestDetectIntents_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, DetectIntents("PRICING???"), DetectIntents("pricing"))
	assert.True(t, DetectIntents("Tell me about FORGELIGHT!").WantsCompany)
}

func TestDetectIntents_NoMatch(t *testing.T) {
	intents := DetectIntents("hello there")

	assert.False(t, intents.Any())
}

func TestDetectIntents_EmptyQuery(t *testing.T) {
	assert.False(t, DetectIntents("").Any())
}
