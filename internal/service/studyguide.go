package service

import (
	"context"
	"fmt"
	"strings"

	"questshare/internal/model"
)

// Generator is the opaque remote study-guide call: topic in, guide out.
type Generator interface {
	Generate(ctx context.Context, topic string) (*model.StudyGuide, error)
}

// StudyGuideService wraps the external generator with input validation and
// the GenerationError contract.
type StudyGuideService interface {
	Generate(ctx context.Context, topic string) (*model.StudyGuide, error)
}

type studyGuideService struct {
	gen Generator
}

// NewStudyGuideService constructs a new StudyGuideService.
func NewStudyGuideService(gen Generator) StudyGuideService {
	return &studyGuideService{gen: gen}
}

func (s *studyGuideService) Generate(ctx context.Context, topic string) (*model.StudyGuide, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &ValidationError{Fields: map[string]string{"topic": "topic is required"}}
	}

	guide, err := s.gen.Generate(ctx, topic)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	if guide == nil || guide.Summary == "" {
		return nil, &GenerationError{Err: fmt.Errorf("generator returned an empty guide")}
	}
	if n := len(guide.PracticeQuestions); n < 3 || n > 5 {
		return nil, &GenerationError{Err: fmt.Errorf("generator returned %d practice questions, want 3-5", n)}
	}
	return guide, nil
}
