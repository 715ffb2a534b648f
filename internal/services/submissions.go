package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// Error variables
var (
	ErrInvalidVerdict   = errors.New("verdict is not in the allowed set")
	ErrUserNotFound     = errors.New("username does not exist")
	ErrProblemNotFound  = errors.New("problem title does not exist")
	ErrAmbiguousUser    = errors.New("username matches more than one user")
	ErrAmbiguousProblem = errors.New("problem title matches more than one problem")
)

const (
	submissionsRecentLimit = 100
	defaultLanguage        = "Python"
)

// SubmissionReader reads the submissions listing.
type SubmissionReader interface {
	Recent(ctx context.Context, limit int) ([]models.SubmissionRow, error)
}

// SubmissionWriter writes a submission row.
type SubmissionWriter interface {
	Save(ctx context.Context, sub models.NewSubmission) error
}

// UserResolver provides form options and username resolution.
type UserResolver interface {
	Options(ctx context.Context) ([]models.Option, error)
	ResolveUsername(ctx context.Context, username string) ([]int64, error)
}

// ProblemResolver provides form options and title resolution.
type ProblemResolver interface {
	Options(ctx context.Context) ([]models.Option, error)
	ResolveTitle(ctx context.Context, title string) ([]int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// CreateSubmission is the form input. Identifiers are authoritative; the
// name fields are a fallback for clients that only hold display strings and
// are rejected when ambiguous.
type CreateSubmission struct {
	UserID       *int64
	Username     string
	ProblemID    *int64
	ProblemTitle string
	Verdict      string
	Language     string
	Notes        string
}

// SubmissionService owns the submissions listing, the form options and the
// write flow.
type SubmissionService struct {
	reader      SubmissionReader
	writer      SubmissionWriter
	users       UserResolver
	problems    ProblemResolver
	kafkaWriter KafkaWriter
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	reader SubmissionReader,
	writer SubmissionWriter,
	users UserResolver,
	problems ProblemResolver,
	kafkaWriter KafkaWriter,
) *SubmissionService {
	return &SubmissionService{
		reader:      reader,
		writer:      writer,
		users:       users,
		problems:    problems,
		kafkaWriter: kafkaWriter,
	}
}

// Recent returns the 100 most recent submissions.
func (s *SubmissionService) Recent(ctx context.Context) ([]models.SubmissionRow, error) {
	rows, err := s.reader.Recent(ctx, submissionsRecentLimit)
	if err != nil {
		logger.Log.Errorw("failed to read submissions", "err", err)
		return nil, err
	}
	return rows, nil
}

// Options returns the user and problem id->label pairs for the form.
func (s *SubmissionService) Options(ctx context.Context) (users, problems []models.Option, err error) {
	if users, err = s.users.Options(ctx); err != nil {
		logger.Log.Errorw("failed to read user options", "err", err)
		return nil, nil, err
	}
	if problems, err = s.problems.Options(ctx); err != nil {
		logger.Log.Errorw("failed to read problem options", "err", err)
		return nil, nil, err
	}
	return users, problems, nil
}

// Create validates the form input, resolves identifiers where needed, writes
// the submission and publishes the recorded event. Database triggers update
// counters and the audit log; this layer does not retry.
func (s *SubmissionService) Create(ctx context.Context, in CreateSubmission) error {
	if _, ok := models.ValidVerdicts[in.Verdict]; !ok {
		return ErrInvalidVerdict
	}

	userID, err := s.resolveUser(ctx, in)
	if err != nil {
		return err
	}
	problemID, err := s.resolveProblem(ctx, in)
	if err != nil {
		return err
	}

	language := in.Language
	if language == "" {
		language = defaultLanguage
	}

	sub := models.NewSubmission{
		UserID:    userID,
		ProblemID: problemID,
		Verdict:   in.Verdict,
		Language:  language,
		Notes:     in.Notes,
	}
	if err := s.writer.Save(ctx, sub); err != nil {
		logger.Log.Errorw("failed to save submission", "userID", userID, "problemID", problemID, "err", err)
		return err
	}

	s.publishEvent(ctx, models.SubmissionEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		ProblemID: problemID,
		Verdict:   in.Verdict,
	})

	return nil
}

func (s *SubmissionService) resolveUser(ctx context.Context, in CreateSubmission) (int64, error) {
	if in.UserID != nil {
		return *in.UserID, nil
	}

	ids, err := s.users.ResolveUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to resolve username", "username", in.Username, "err", err)
		return 0, err
	}
	switch len(ids) {
	case 0:
		return 0, ErrUserNotFound
	case 1:
		return ids[0], nil
	default:
		return 0, ErrAmbiguousUser
	}
}

func (s *SubmissionService) resolveProblem(ctx context.Context, in CreateSubmission) (int64, error) {
	if in.ProblemID != nil {
		return *in.ProblemID, nil
	}

	ids, err := s.problems.ResolveTitle(ctx, in.ProblemTitle)
	if err != nil {
		logger.Log.Errorw("failed to resolve problem title", "title", in.ProblemTitle, "err", err)
		return 0, err
	}
	switch len(ids) {
	case 0:
		return 0, ErrProblemNotFound
	case 1:
		return ids[0], nil
	default:
		return 0, ErrAmbiguousProblem
	}
}

// publishEvent publishes a submission-recorded event to Kafka.
func (s *SubmissionService) publishEvent(ctx context.Context, event models.SubmissionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal submission event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish submission event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Submission event published to Kafka", "event_id", event.EventID, "verdict", event.Verdict)
	}
}
