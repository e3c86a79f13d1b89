package service

import (
	"context"
	"testing"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `Confidence: 7.5
Clarity: 8.0
Score: 6.5
Sentiment: 0.4
Feedback: Solid answer with good structure. Add more concrete examples.
Strengths: structured; calm delivery
Improvements: give examples; quantify results
`

func TestParseAnalysisResponse(t *testing.T) {
	result, err := parseAnalysisResponse(sampleResponse, model.AnalysisKindText)
	require.NoError(t, err)

	assert.Equal(t, model.AnalysisKindText, result.Kind)
	assert.InDelta(t, 7.5, result.Confidence.Score, 1e-9)
	assert.InDelta(t, 8.0, result.Communication.Clarity, 1e-9)
	assert.InDelta(t, 6.5, result.AnswerScore.Score, 1e-9)
	assert.InDelta(t, 0.4, result.Sentiment.Overall, 1e-9)
	assert.Equal(t, "Solid answer with good structure. Add more concrete examples.", result.AnswerScore.Feedback)
	assert.Equal(t, []string{"structured", "calm delivery"}, result.Strengths)
	assert.Equal(t, []string{"give examples", "quantify results"}, result.SuggestedImprovements)
	assert.Nil(t, result.NonVerbal)
}

func TestParseAnalysisResponseClampsScores(t *testing.T) {
	raw := "Confidence: 14\nClarity: -3\nScore: 11\n"
	result, err := parseAnalysisResponse(raw, model.AnalysisKindText)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, result.Confidence.Score, 1e-9)
	assert.InDelta(t, 0.0, result.Communication.Clarity, 1e-9)
	assert.InDelta(t, 10.0, result.AnswerScore.Score, 1e-9)
}

func TestParseAnalysisResponseSentimentNotClamped(t *testing.T) {
	raw := "Confidence: 5\nClarity: 5\nScore: 5\nSentiment: -0.9\n"
	result, err := parseAnalysisResponse(raw, model.AnalysisKindText)
	require.NoError(t, err)
	assert.InDelta(t, -0.9, result.Sentiment.Overall, 1e-9)
}

func TestParseAnalysisResponseMissingRequiredField(t *testing.T) {
	_, err := parseAnalysisResponse("Clarity: 8\nScore: 7\n", model.AnalysisKindText)
	assert.Error(t, err)

	_, err = parseAnalysisResponse("Confidence: abc\nClarity: 8\nScore: 7\n", model.AnalysisKindText)
	assert.Error(t, err)
}

func TestParseAnalysisResponseVideoNonVerbal(t *testing.T) {
	raw := sampleResponse + "EyeContact: 6\nPosture: 7\nPresence: 6.5\n"
	result, err := parseAnalysisResponse(raw, model.AnalysisKindVideo)
	require.NoError(t, err)

	require.NotNil(t, result.NonVerbal)
	assert.InDelta(t, 6.0, result.NonVerbal.EyeContact, 1e-9)
	assert.InDelta(t, 7.0, result.NonVerbal.Posture, 1e-9)
	assert.InDelta(t, 6.5, result.NonVerbal.OverallPresence, 1e-9)

	// A partial non-verbal block is dropped rather than half-filled.
	raw = sampleResponse + "EyeContact: 6\n"
	result, err = parseAnalysisResponse(raw, model.AnalysisKindVideo)
	require.NoError(t, err)
	assert.Nil(t, result.NonVerbal)
}

func TestParseKeyedLinesFirstValueWins(t *testing.T) {
	fields := parseKeyedLines("Score: 7\nScore: 2\nnote without colon\nEmpty:\n")
	assert.Equal(t, "7", fields["score"])
	_, ok := fields["empty"]
	assert.False(t, ok)
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"a", "b"}, splitTags(" a ; b ; "))
}

func TestWordsPerMinute(t *testing.T) {
	assert.Zero(t, wordsPerMinute(100, 0))
	assert.InDelta(t, 120.0, wordsPerMinute(60, 30), 1e-9)
}

func TestAnalyzeWithoutClient(t *testing.T) {
	svc := &geminiAnalyzerService{client: nil, timeout: 0}

	_, err := svc.Analyze(context.Background(), "question", ResponseInput{Text: "some answer"})
	assert.True(t, apperr.IsAnalyzer(err))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	svc := &geminiAnalyzerService{client: nil, timeout: 0}

	_, err := svc.Analyze(context.Background(), "question", ResponseInput{})
	assert.True(t, apperr.IsAnalyzer(err))
}

func TestAnalyzeMediaWithoutTranscript(t *testing.T) {
	svc := &geminiAnalyzerService{client: nil, timeout: 0}

	url := "/media/recording.webm"
	result, err := svc.Analyze(context.Background(), "question", ResponseInput{AudioURL: &url})
	require.NoError(t, err)

	// Scored locally as a low-confidence result, no remote call needed.
	assert.Equal(t, model.AnalysisKindAudio, result.Kind)
	assert.InDelta(t, 2.0, result.Confidence.Score, 1e-9)
	assert.Equal(t, "F", result.AnswerScore.Grade)
}

func TestResponseInputKind(t *testing.T) {
	audio, video := "/media/a.mp3", "/media/v.webm"

	assert.Equal(t, model.AnalysisKindText, ResponseInput{Text: "hi"}.Kind())
	assert.Equal(t, model.AnalysisKindAudio, ResponseInput{AudioURL: &audio}.Kind())
	// Video outranks audio when both are present.
	assert.Equal(t, model.AnalysisKindVideo, ResponseInput{AudioURL: &audio, VideoURL: &video}.Kind())
}
