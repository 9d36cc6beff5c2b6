package roadmapController

import "fmt"

// RoadmapRequest carries the onboarding answers a roadmap is built from
type RoadmapRequest struct {
	Topic      string `json:"topic"`
	Duration   string `json:"duration"`
	Goal       string `json:"goal"`
	SkillLevel string `json:"skillLevel"`
	Preference string `json:"preference"`
}

// MilestoneCountForDuration maps a duration label to the number of
// milestones the generator is asked for. Unrecognized labels fall back
// to 4.
func MilestoneCountForDuration(duration string) int {
	switch duration {
	case "1 week":
		return 3
	case "2 weeks":
		return 4
	case "4 weeks":
		return 5
	default:
		return 4
	}
}

// resourceRules returns prompt rules for the user's resource preference
func resourceRules(preference string) string {
	switch preference {
	case "Videos":
		return "- Include 2-3 YouTube videos and 1 website/documentation link per milestone\n"
	case "Notes":
		return "- Include 2 websites/documentation links and 1 video per milestone\n"
	case "Interactive":
		return "- Include coding playgrounds, GitHub labs, and interactive tutorials\n"
	default:
		return ""
	}
}

// difficultyRules returns prompt rules for the user's skill level
func difficultyRules(skillLevel string) string {
	switch skillLevel {
	case "Beginner":
		return "- Use simple explanations and easier quiz questions\n- Focus on fundamentals and basic concepts\n"
	case "Advanced":
		return "- Include advanced documentation and complex tutorials\n- Create challenging quiz questions\n"
	default:
		return ""
	}
}

// goalRules returns prompt rules for the user's learning goal
func goalRules(goal string) string {
	switch goal {
	case "Exam":
		return "- Create practice-style quiz questions similar to exam format\n- Focus on testable concepts\n"
	case "Project":
		return "- Include 1 small project idea or exercise per milestone\n- Focus on practical application\n"
	case "Placement":
		return "- Add interview-style questions and resources\n- Include real-world problem-solving scenarios\n"
	default:
		return ""
	}
}

// BuildRoadmapPrompt builds the generation prompt, asking for a pure
// JSON reply with the exact roadmap shape the parser expects
func BuildRoadmapPrompt(req RoadmapRequest) string {
	milestoneCount := MilestoneCountForDuration(req.Duration)

	prompt := fmt.Sprintf(`You are an expert learning assistant. Generate a detailed learning roadmap for: "%s" with duration: %s.

User Profile:
- Skill Level: %s
- Learning Preference: %s
- Goal: %s

Create a JSON response with this exact structure:
{
  "courseName": "Course title here",
  "duration": "%s",
  "milestones": [
    {
      "title": "Milestone title",
      "order": 1,
      "resources": {
        "website": "High-quality website URL with description",
        "youtube": [
          {"title": "Exact video title", "channel": "Channel name", "url": "YouTube URL"},
          {"title": "Exact video title", "channel": "Channel name", "url": "YouTube URL"}
        ],
        "additional": [
          {"title": "Resource title", "url": "URL", "type": "article"},
          {"title": "Resource title", "url": "URL", "type": "documentation"}
        ]
      },
      "quiz": [
        {
          "question": "Quiz question here?",
          "options": ["Option A", "Option B", "Option C", "Option D"],
          "correct": 0
        },
        {
          "question": "Another quiz question?",
          "options": ["Option A", "Option B", "Option C", "Option D"],
          "correct": 2
        }
      ]
    }
  ]
}

Personalization Requirements:
- Create exactly %d milestones
- Each milestone should have 3-5 quiz questions
%s%s%s- Include real, working URLs for resources
- Make sure the progression is logical and builds upon previous milestones
- Quiz questions should test understanding of the milestone content

Topic: %s
Duration: %s`,
		req.Topic, req.Duration,
		req.SkillLevel, req.Preference, req.Goal,
		req.Duration,
		milestoneCount,
		resourceRules(req.Preference), difficultyRules(req.SkillLevel), goalRules(req.Goal),
		req.Topic, req.Duration)

	return "You are a learning expert. Always respond with valid JSON only, no additional text.\n\n" + prompt
}
