package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/model"
)

// QuestionBankService hands out question stubs for a new interview. Selection
// is random without replacement, so the same question never repeats within
// one interview; presentation order is fixed at creation.
type QuestionBankService interface {
	Generate(interviewType model.InterviewType, difficulty model.Difficulty, count int) ([]model.Question, error)
}

type questionTemplate struct {
	Text     string
	Category string
}

type questionBankService struct {
	templates map[model.InterviewType]map[model.Difficulty][]questionTemplate
	rng       *rand.Rand
	mu        sync.Mutex
}

func NewQuestionBankService() QuestionBankService {
	return &questionBankService{
		templates: defaultQuestionTemplates(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *questionBankService) Generate(interviewType model.InterviewType, difficulty model.Difficulty, count int) ([]model.Question, error) {
	if count < 1 {
		return nil, apperr.Validationf("question count must be at least 1, got %d", count)
	}

	byDifficulty, ok := s.templates[interviewType]
	if !ok {
		return nil, apperr.Validationf("unknown interview type %q", interviewType)
	}
	pool, ok := byDifficulty[difficulty]
	if !ok {
		return nil, apperr.Validationf("unknown difficulty %q", difficulty)
	}
	if count > len(pool) {
		return nil, apperr.Validationf("requested %d questions but only %d are available for %s/%s", count, len(pool), interviewType, difficulty)
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	questions := make([]model.Question, 0, count)
	for i := 0; i < count; i++ {
		tpl := pool[perm[i]]
		questions = append(questions, model.Question{
			Text:             tpl.Text,
			Category:         tpl.Category,
			OrderInInterview: i + 1,
		})
	}
	return questions, nil
}

func defaultQuestionTemplates() map[model.InterviewType]map[model.Difficulty][]questionTemplate {
	return map[model.InterviewType]map[model.Difficulty][]questionTemplate{
		model.TypeTechnical: {
			model.DifficultyBeginner: {
				{Text: "Explain the difference between an array and a linked list.", Category: "data-structures"},
				{Text: "What is the time complexity of binary search, and why?", Category: "algorithms"},
				{Text: "Describe what happens when you type a URL into a browser.", Category: "networking"},
				{Text: "What is the difference between a process and a thread?", Category: "operating-systems"},
				{Text: "Explain what a primary key is and why tables need one.", Category: "databases"},
				{Text: "What does it mean for code to be idempotent? Give an example.", Category: "fundamentals"},
			},
			model.DifficultyIntermediate: {
				{Text: "How would you detect and remove a cycle in a linked list?", Category: "algorithms"},
				{Text: "Compare optimistic and pessimistic locking. When would you pick each?", Category: "databases"},
				{Text: "Explain how a hash map handles collisions.", Category: "data-structures"},
				{Text: "Walk through how you would design a rate limiter for an API.", Category: "system-design"},
				{Text: "What are the tradeoffs between REST and message-queue integration?", Category: "system-design"},
				{Text: "Describe how garbage collection works in a managed runtime you know.", Category: "runtime"},
			},
			model.DifficultyAdvanced: {
				{Text: "Design a URL shortener that serves 100k requests per second.", Category: "system-design"},
				{Text: "How would you shard a relational database while keeping transactions?", Category: "databases"},
				{Text: "Explain the CAP theorem with a concrete failure scenario.", Category: "distributed-systems"},
				{Text: "Design an idempotent payment-processing pipeline.", Category: "system-design"},
				{Text: "How does consensus work in Raft? Where does it get slow?", Category: "distributed-systems"},
				{Text: "Describe a caching strategy for a feed with heavy fan-out.", Category: "system-design"},
			},
		},
		model.TypeBehavioral: {
			model.DifficultyBeginner: {
				{Text: "Tell me about yourself and what drew you to this field.", Category: "introduction"},
				{Text: "Describe a project you are proud of. What was your role?", Category: "experience"},
				{Text: "How do you prioritize when everything feels urgent?", Category: "organization"},
				{Text: "Tell me about a time you had to learn something quickly.", Category: "learning"},
				{Text: "What kind of team environment helps you do your best work?", Category: "teamwork"},
			},
			model.DifficultyIntermediate: {
				{Text: "Tell me about a time you disagreed with a teammate. How was it resolved?", Category: "conflict"},
				{Text: "Describe a failure you experienced and what you changed afterward.", Category: "growth"},
				{Text: "Tell me about a time you received hard feedback. What did you do?", Category: "feedback"},
				{Text: "Describe a situation where you had to influence without authority.", Category: "leadership"},
				{Text: "Tell me about a deadline you nearly missed and how you handled it.", Category: "pressure"},
			},
			model.DifficultyAdvanced: {
				{Text: "Describe the hardest people decision you have been part of.", Category: "leadership"},
				{Text: "Tell me about a time you changed the direction of a project against consensus.", Category: "judgment"},
				{Text: "Describe a long-running conflict between teams you helped resolve.", Category: "conflict"},
				{Text: "Tell me about a strategic bet you made that did not pay off.", Category: "growth"},
				{Text: "How have you built trust after joining a skeptical team?", Category: "leadership"},
			},
		},
		model.TypeHR: {
			model.DifficultyBeginner: {
				{Text: "Why do you want to work at this company?", Category: "motivation"},
				{Text: "Where do you see yourself in five years?", Category: "career-goals"},
				{Text: "What are your salary expectations?", Category: "compensation"},
				{Text: "What are your greatest strengths and weaknesses?", Category: "self-assessment"},
				{Text: "Why are you leaving your current position?", Category: "motivation"},
			},
			model.DifficultyIntermediate: {
				{Text: "How do you evaluate whether a company culture fits you?", Category: "culture"},
				{Text: "Describe your ideal manager.", Category: "work-style"},
				{Text: "What would make you decline an otherwise attractive offer?", Category: "values"},
				{Text: "How do you keep work and life sustainable during crunch periods?", Category: "work-style"},
				{Text: "What does career growth mean to you beyond promotions?", Category: "career-goals"},
			},
			model.DifficultyAdvanced: {
				{Text: "You have competing offers. Walk me through how you will decide.", Category: "negotiation"},
				{Text: "How would you handle discovering a policy you consider unethical?", Category: "values"},
				{Text: "What would your references say is the riskiest thing about hiring you?", Category: "self-assessment"},
				{Text: "How do you think about equity versus cash at this stage of your career?", Category: "compensation"},
				{Text: "Describe a time your personal values conflicted with a company decision.", Category: "values"},
			},
		},
		model.TypeSituational: {
			model.DifficultyBeginner: {
				{Text: "Your teammate is blocked and asks for help while you are behind on your own task. What do you do?", Category: "teamwork"},
				{Text: "You notice a small bug in production that nobody else has seen. What do you do?", Category: "ownership"},
				{Text: "A meeting is running long and you have a conflicting commitment. How do you handle it?", Category: "communication"},
				{Text: "You are assigned a task with unclear requirements. What is your first step?", Category: "ambiguity"},
				{Text: "A customer reports an issue you cannot reproduce. How do you proceed?", Category: "problem-solving"},
			},
			model.DifficultyIntermediate: {
				{Text: "Two stakeholders give you contradictory requirements a week before launch. What do you do?", Category: "ambiguity"},
				{Text: "You discover your estimate was off by 3x mid-sprint. How do you communicate it?", Category: "communication"},
				{Text: "A senior engineer keeps rejecting your reviews with vague comments. How do you respond?", Category: "conflict"},
				{Text: "Production goes down during a demo to an important customer. Walk me through your response.", Category: "pressure"},
				{Text: "You inherit a codebase with no tests and a release in two weeks. What is your plan?", Category: "ownership"},
			},
			model.DifficultyAdvanced: {
				{Text: "Leadership asks you to cut scope your team believes is critical for safety. What do you do?", Category: "judgment"},
				{Text: "A key dependency team slips their date, jeopardizing your quarter commitment. How do you manage it?", Category: "ambiguity"},
				{Text: "You find evidence a teammate falsified load-test results before a launch decision. What now?", Category: "values"},
				{Text: "Your largest customer demands a feature that conflicts with your platform direction. How do you respond?", Category: "judgment"},
				{Text: "Half your team resigns in one month. How do you keep commitments and morale?", Category: "leadership"},
			},
		},
	}
}
