package rag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContext_EmptyHistory(t *testing.T) {
	ctx := ExtractContext(nil, DefaultContextConfig())

	assert.True(t, ctx.IsEmpty())
	assert.Equal(t, StageInitial, ctx.Stage)
	assert.Zero(t, ctx.MessageCount)
	assert.Empty(t, ctx.Topics)
	assert.Empty(t, ctx.UserQuestions)
}

func TestExtractContext_ThreeTopicsReachEngaged(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "We need data analysis for our store"},
		{Role: RoleModel, Content: "Happy to help with that."},
		{Role: RoleUser, Content: "Can you build a chatbot too?"},
		{Role: RoleModel, Content: "Yes, we build assistants."},
		{Role: RoleUser, Content: "And a new website please"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.Equal(t, StageEngaged, ctx.Stage)
	assert.ElementsMatch(t, []string{"data-analysis", "chatbots", "web-development"}, ctx.Topics)
	assert.Equal(t, 5, ctx.MessageCount)
}

func TestExtractContext_SingleTopicIsExploring(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "What's your pricing like?"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.Equal(t, StageExploring, ctx.Stage)
	assert.Equal(t, []string{"pricing"}, ctx.Topics)
}

func TestExtractContext_IgnoresModelTurns(t *testing.T) {
	history := []Message{
		{Role: RoleModel, Content: "Our chatbot pricing is flexible for your team."},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.Empty(t, ctx.Topics)
	assert.Equal(t, StageInitial, ctx.Stage)
	assert.Equal(t, 1, ctx.MessageCount)
}

func TestExtractContext_WindowDropsOldTopics(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "I want a chatbot"},
		{Role: RoleModel, Content: "Great, tell me more."},
	}
	for i := 0; i < 10; i++ {
		history = append(history, Message{Role: RoleUser, Content: fmt.Sprintf("ok thanks %d", i)})
	}

	windowed := ExtractContext(history, DefaultContextConfig())
	assert.Empty(t, windowed.Topics, "topic outside the window should be forgotten")
	assert.Equal(t, StageInitial, windowed.Stage)
	assert.Equal(t, 12, windowed.MessageCount)

	cfg := DefaultContextConfig()
	cfg.FullHistoryTopics = true
	full := ExtractContext(history, cfg)
	assert.Equal(t, []string{"chatbots"}, full.Topics)
	assert.Equal(t, StageExploring, full.Stage)
}

func TestExtractContext_KeepsLastThreeQuestions(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "First question?"},
		{Role: RoleUser, Content: "Second question?"},
		{Role: RoleUser, Content: "Third question?"},
		{Role: RoleUser, Content: "Fourth question?"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	require.Len(t, ctx.UserQuestions, 3)
	assert.Equal(t, []string{"Second question?", "Third question?", "Fourth question?"}, ctx.UserQuestions)
}

func TestExtractContext_InterrogativeWithoutQuestionMark(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "How does onboarding work"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.Equal(t, []string{"How does onboarding work"}, ctx.UserQuestions)
}

func TestExtractContext_ServiceMentionsAndInterests(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "We are looking for a chatbot and workflow automation"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.ElementsMatch(t, []string{"chatbots", "automation"}, ctx.MentionedServices)
	require.Len(t, ctx.UserInterests, 1)
	assert.Contains(t, ctx.UserInterests[0], "looking for")
}

func TestExtractContext_TopicsDeduplicated(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Content: "I want a chatbot"},
		{Role: RoleUser, Content: "Yes a chatbot, a conversational bot"},
	}

	ctx := ExtractContext(history, DefaultContextConfig())

	assert.Equal(t, []string{"chatbots"}, ctx.Topics)
}

func TestEnhanceQuery_AppendsTopicsAndStageHint(t *testing.T) {
	ctx := ConversationContext{
		Topics: []string{"chatbots", "pricing"},
		Stage:  StageEngaged,
	}

	enhanced := EnhanceQuery("what next", ctx)

	assert.Equal(t, "what next, related to chatbots, pricing detailed information", enhanced)
}

func TestEnhanceQuery_ExploringHint(t *testing.T) {
	ctx := ConversationContext{Topics: []string{"pricing"}, Stage: StageExploring}

	assert.Equal(t, "budget, related to pricing overview and benefits", EnhanceQuery("budget", ctx))
}

func TestEnhanceQuery_EmptyContextIsIdentity(t *testing.T) {
	assert.Equal(t, "hello", EnhanceQuery("hello", ConversationContext{Stage: StageInitial}))
}
