package model

type AnalysisKind string

const (
	AnalysisKindText  AnalysisKind = "text"
	AnalysisKindAudio AnalysisKind = "audio"
	AnalysisKindVideo AnalysisKind = "video"
)

// AnalysisResult is the per-question score object returned by the response
// analyzer. It is a tagged variant: the core fields are always present, while
// NonVerbal only accompanies video responses.
type AnalysisResult struct {
	Kind                  AnalysisKind  `json:"kind"`
	Confidence            Confidence    `json:"confidence"`
	Communication         Communication `json:"communication"`
	AnswerScore           AnswerScore   `json:"answer_score"`
	Sentiment             Sentiment     `json:"sentiment"`
	NonVerbal             *NonVerbal    `json:"non_verbal,omitempty"`
	Strengths             []string      `json:"strengths,omitempty"`
	SuggestedImprovements []string      `json:"suggested_improvements,omitempty"`
}

type Confidence struct {
	Score float64 `json:"score"` // 0-10
}

type Communication struct {
	Clarity        float64 `json:"clarity"` // 0-10
	WordCount      int     `json:"word_count"`
	WordsPerMinute float64 `json:"words_per_minute"`
}

type AnswerScore struct {
	Score    float64 `json:"score"` // 0-10
	Grade    string  `json:"grade"`
	Feedback string  `json:"feedback,omitempty"`
}

// Sentiment.Overall is an opaque float from the analyzer; its scale depends
// on the producer and is never renormalized here.
type Sentiment struct {
	Overall float64 `json:"overall"`
}

type NonVerbal struct {
	EyeContact      float64 `json:"eye_contact"`      // 0-10
	Posture         float64 `json:"posture"`          // 0-10
	OverallPresence float64 `json:"overall_presence"` // 0-10
}

// GradeNoData marks an overall analysis computed over zero answered
// questions. It is distinct from a genuine F.
const GradeNoData = "N/A"

// Skill labels used for strongest/weakest comparison, in tie-break priority
// order.
const (
	SkillConfidence = "confidence"
	SkillClarity    = "clarity"
	SkillSentiment  = "sentiment"
)

// OverallAnalysis is the interview-level rollup, derived once at completion
// and immutable afterward. All averages are over answered questions only.
type OverallAnalysis struct {
	AverageConfidence float64 `json:"average_confidence"`
	AverageClarity    float64 `json:"average_clarity"`
	AnswerScore       float64 `json:"answer_score"`
	SentimentScore    float64 `json:"sentiment_score"`
	AnsweredQuestions int     `json:"answered_questions"`
	TotalQuestions    int     `json:"total_questions"`
	Grade             string  `json:"grade"`
	StrongestSkill    string  `json:"strongest_skill,omitempty"`
	ImprovementArea   string  `json:"improvement_area,omitempty"`
}

// AIFeedback is the free-text companion to OverallAnalysis.
type AIFeedback struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations,omitempty"`
}
