package onboardingController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardWalksAllSteps(t *testing.T) {
	step := StepTopic
	answers := []string{"Web Development", "2 weeks", "Videos", "Beginner", "Project"}

	for i, answer := range answers {
		transition, err := Advance(step, answer)
		require.NoError(t, err, "step %d", i)
		step = transition.Next
	}

	assert.Equal(t, StepDone, step)
}

func TestWizardReplies(t *testing.T) {
	transition, err := Advance(StepTopic, "Python")
	require.NoError(t, err)
	assert.Equal(t, StepDuration, transition.Next)
	assert.Contains(t, transition.Reply, "How much time")
	assert.Equal(t, []string{"1 week", "2 weeks", "4 weeks"}, transition.Options)

	transition, err = Advance(StepGoal, "Exam")
	require.NoError(t, err)
	assert.Equal(t, StepDone, transition.Next)
	assert.Empty(t, transition.Options)
}

func TestWizardDoneIsAbsorbing(t *testing.T) {
	_, err := Advance(StepDone, "anything")
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestWizardRejectsEmptyInput(t *testing.T) {
	_, err := Advance(StepTopic, "")
	assert.Error(t, err)
}
