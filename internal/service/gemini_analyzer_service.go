package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dharunks/insightiq/config"
	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/metrics"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiAnalyzerService struct {
	client  *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiAnalyzerService builds the Gemini-backed response analyzer. With
// no API key configured the service still constructs, but every remote call
// fails with an AnalyzerError (the submission itself keeps working).
func NewGeminiAnalyzerService(cfg *config.Config) (ResponseAnalyzer, error) {
	timeout := cfg.Analyzer.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Response analysis will be unavailable.")
		return &geminiAnalyzerService{client: nil, timeout: timeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiAnalyzerService{
		client:  client.GenerativeModel("gemini-1.5-flash"),
		timeout: timeout,
	}, nil
}

func (s *geminiAnalyzerService) Analyze(ctx context.Context, questionText string, input ResponseInput) (*model.AnalysisResult, error) {
	transcript := strings.TrimSpace(input.Text)

	if transcript == "" && !input.HasMedia() {
		return nil, &apperr.AnalyzerError{Err: errors.New("nothing to analyze: no text and no media supplied")}
	}
	if transcript == "" {
		// Media without a transcript: score locally as a low-confidence
		// result instead of failing or burning a remote call.
		return lowConfidenceResult(input), nil
	}

	if s.client == nil {
		return nil, &apperr.AnalyzerError{Err: errors.New("gemini client not initialized")}
	}

	wordCount := countWords(transcript)
	prompt := buildAnalysisPrompt(questionText, transcript, input.Kind())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			metrics.ObserveAnalyzer("timeout", elapsed)
			log.Error().Dur("timeout", s.timeout).Msg("Gemini analysis timed out")
			return nil, &apperr.TimeoutError{After: s.timeout}
		}
		metrics.ObserveAnalyzer("error", elapsed)
		log.Error().Err(err).Msg("Gemini API error during response analysis")
		return nil, &apperr.AnalyzerError{Err: err}
	}

	raw := collectResponseText(resp)
	if raw == "" {
		metrics.ObserveAnalyzer("error", elapsed)
		return nil, &apperr.AnalyzerError{Err: errors.New("gemini returned no text content")}
	}

	result, err := parseAnalysisResponse(raw, input.Kind())
	if err != nil {
		metrics.ObserveAnalyzer("error", elapsed)
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse analysis from Gemini response")
		return nil, &apperr.AnalyzerError{Err: err}
	}
	metrics.ObserveAnalyzer("ok", elapsed)

	result.Communication.WordCount = wordCount
	result.Communication.WordsPerMinute = wordsPerMinute(wordCount, input.Duration)
	result.AnswerScore.Grade = resolveGrade(result.AnswerScore.Score)
	return result, nil
}

// lowConfidenceResult is the contractual answer for responses with media but
// no analyzable transcript.
func lowConfidenceResult(input ResponseInput) *model.AnalysisResult {
	return &model.AnalysisResult{
		Kind:       input.Kind(),
		Confidence: model.Confidence{Score: 2},
		Communication: model.Communication{
			Clarity:        2,
			WordCount:      0,
			WordsPerMinute: 0,
		},
		AnswerScore: model.AnswerScore{
			Score:    1,
			Grade:    resolveGrade(1),
			Feedback: "The recording contained no analyzable transcript, so only a minimal assessment was possible.",
		},
		Sentiment: model.Sentiment{Overall: 0},
		SuggestedImprovements: []string{
			"Speak clearly, or include a written answer alongside the recording",
		},
	}
}

func buildAnalysisPrompt(questionText, transcript string, kind model.AnalysisKind) string {
	var b strings.Builder
	b.WriteString("You are an expert interview coach evaluating a candidate's answer to an interview question.\n\n")
	b.WriteString("Interview Question:\n---\n")
	b.WriteString(questionText)
	b.WriteString("\n---\n\nCandidate's Answer:\n---\n")
	b.WriteString(transcript)
	b.WriteString("\n---\n\n")
	b.WriteString("Evaluate the answer on delivery confidence, clarity of communication, substance, and overall tone.\n\n")
	b.WriteString(`Format your response strictly as the following lines, each on its own line:
Confidence: [0.0 to 10.0]
Clarity: [0.0 to 10.0]
Score: [0.0 to 10.0, overall answer quality]
Sentiment: [-1.0 to 1.0, overall tone of the answer]
Feedback: [two to four sentences of concrete, constructive feedback]
Strengths: [semicolon-separated list of short strength tags]
Improvements: [semicolon-separated list of short, actionable improvement tags]
`)
	if kind == model.AnalysisKindVideo {
		b.WriteString(`EyeContact: [0.0 to 10.0, estimated from the delivery]
Posture: [0.0 to 10.0, estimated from the delivery]
Presence: [0.0 to 10.0, estimated overall presence]
`)
	}
	return b.String()
}

func collectResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var full strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			full.WriteString(string(txt))
		}
	}
	return full.String()
}

// parseAnalysisResponse extracts the line-keyed fields the prompt requested.
// Numeric scores are clamped to 0-10; sentiment passes through untouched
// since its scale belongs to the producer.
func parseAnalysisResponse(raw string, kind model.AnalysisKind) (*model.AnalysisResult, error) {
	fields := parseKeyedLines(raw)

	confidence, ok := parseClampedScore(fields["confidence"])
	if !ok {
		return nil, fmt.Errorf("response does not contain a parsable 'Confidence:' line")
	}
	clarity, ok := parseClampedScore(fields["clarity"])
	if !ok {
		return nil, fmt.Errorf("response does not contain a parsable 'Clarity:' line")
	}
	score, ok := parseClampedScore(fields["score"])
	if !ok {
		return nil, fmt.Errorf("response does not contain a parsable 'Score:' line")
	}
	sentiment, _ := parseFloat(fields["sentiment"])

	result := &model.AnalysisResult{
		Kind:          kind,
		Confidence:    model.Confidence{Score: confidence},
		Communication: model.Communication{Clarity: clarity},
		AnswerScore: model.AnswerScore{
			Score:    score,
			Feedback: fields["feedback"],
		},
		Sentiment:             model.Sentiment{Overall: sentiment},
		Strengths:             splitTags(fields["strengths"]),
		SuggestedImprovements: splitTags(fields["improvements"]),
	}

	if kind == model.AnalysisKindVideo {
		eye, okEye := parseClampedScore(fields["eyecontact"])
		posture, okPosture := parseClampedScore(fields["posture"])
		presence, okPresence := parseClampedScore(fields["presence"])
		if okEye && okPosture && okPresence {
			result.NonVerbal = &model.NonVerbal{
				EyeContact:      eye,
				Posture:         posture,
				OverallPresence: presence,
			}
		}
	}

	return result, nil
}

// parseKeyedLines lowercases "Key: value" lines into a map. Later lines with
// a known key never overwrite earlier ones, matching the prompt's
// one-line-per-field contract.
func parseKeyedLines(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if _, exists := fields[key]; !exists {
			fields[key] = value
		}
	}
	return fields
}

func parseFloat(value string) (float64, bool) {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseClampedScore(value string) (float64, bool) {
	f, ok := parseFloat(value)
	if !ok {
		return 0, false
	}
	if f < 0 {
		f = 0
	}
	if f > 10 {
		f = 10
	}
	return f, true
}

func splitTags(value string) []string {
	if value == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(value, ";") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
