package service

import (
	"context"
	"strings"

	"github.com/dharunks/insightiq/internal/model"
)

// ResponseInput is the raw material handed to the analyzer: a transcript
// and/or stored media artifacts, plus the spoken duration in seconds.
type ResponseInput struct {
	Text     string
	AudioURL *string
	VideoURL *string
	Duration float64
}

func (in ResponseInput) Kind() model.AnalysisKind {
	switch {
	case in.VideoURL != nil:
		return model.AnalysisKindVideo
	case in.AudioURL != nil:
		return model.AnalysisKindAudio
	default:
		return model.AnalysisKindText
	}
}

func (in ResponseInput) HasMedia() bool {
	return in.AudioURL != nil || in.VideoURL != nil
}

// ResponseAnalyzer is the external collaborator that scores a single
// response. Contract: it returns within a bounded timeout or fails with a
// TimeoutError; empty or missing text yields a valid low-confidence result
// rather than an error, but an input with no text and no media at all may be
// rejected. Callers never retry automatically; resubmitting the response is
// the retry path.
type ResponseAnalyzer interface {
	Analyze(ctx context.Context, questionText string, input ResponseInput) (*model.AnalysisResult, error)
}

// countWords reports the whitespace-separated token count of a transcript.
func countWords(text string) int {
	return len(strings.Fields(text))
}

// wordsPerMinute derives speaking pace from the response duration; zero
// duration (typed answers) yields zero pace rather than a division blowup.
func wordsPerMinute(wordCount int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(wordCount) / (durationSeconds / 60.0)
}
