package onboardingController

import "errors"

// Step enumerates the onboarding chat states. The wizard walks them in
// a fixed order and StepDone is absorbing.
type Step int

const (
	StepTopic Step = iota
	StepDuration
	StepPreference
	StepSkillLevel
	StepGoal
	StepDone
)

// Greeting opens every onboarding conversation
const Greeting = "Hi! I'm your AI learning assistant. I'll help you create a personalized learning roadmap. What would you like to learn? (e.g., Web Development, Python, Data Science)"

// ErrSessionComplete is returned when a message arrives after StepDone
var ErrSessionComplete = errors.New("Onboarding already completed!")

// Transition is the wizard's reply to one user message
type Transition struct {
	Next    Step
	Reply   string
	Options []string // suggested quick-reply chips, free text is also accepted
}

// transitions holds the reply and option chips shown after each step's
// answer is recorded
var transitions = map[Step]Transition{
	StepTopic: {
		Next:    StepDuration,
		Reply:   "Great choice! How much time do you have available for this learning journey?",
		Options: []string{"1 week", "2 weeks", "4 weeks"},
	},
	StepDuration: {
		Next:    StepPreference,
		Reply:   "What's your preferred learning style?",
		Options: []string{"Videos", "Notes", "Interactive"},
	},
	StepPreference: {
		Next:    StepSkillLevel,
		Reply:   "What's your current skill level?",
		Options: []string{"Beginner", "Intermediate", "Advanced"},
	},
	StepSkillLevel: {
		Next:    StepGoal,
		Reply:   "What's your main learning goal?",
		Options: []string{"Exam", "Project", "Placement"},
	},
	StepGoal: {
		Next:  StepDone,
		Reply: "Perfect! I have everything I need. Generating your personalized roadmap now...",
	},
}

// Advance consumes one user message at the given step and returns the
// wizard's reply. The caller is responsible for recording the input
// against the field the step asks about.
func Advance(step Step, input string) (Transition, error) {
	if step >= StepDone {
		return Transition{}, ErrSessionComplete
	}
	if input == "" {
		return Transition{}, errors.New("Message is required!")
	}

	t, ok := transitions[step]
	if !ok {
		return Transition{}, errors.New("Invalid onboarding step!")
	}
	return t, nil
}
