// Package cli implements the interactive terminal frontend for the quiz
// engine: a session bound to one user, a main menu, and the practice loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/quizdeck/quizdeck-backend/internal/domain"
	flashcardsvc "github.com/quizdeck/quizdeck-backend/internal/service/flashcard"
	"github.com/quizdeck/quizdeck-backend/pkg/ctxutil"
)

// quizService is the slice of the flashcard service the CLI consumes.
type quizService interface {
	LookupUser(ctx context.Context, input flashcardsvc.LookupUserInput) (*domain.User, error)
	CreateFlashcard(ctx context.Context, input flashcardsvc.CreateFlashcardInput) (*domain.Flashcard, error)
	ListFlashcards(ctx context.Context) ([]domain.Flashcard, error)
	PracticeView(ctx context.Context) ([]domain.FlashcardWithStatus, error)
	SubmitAnswer(ctx context.Context, input flashcardsvc.SubmitAnswerInput) (*domain.UserAnswer, error)
	Progress(ctx context.Context) (flashcardsvc.Progress, error)
	Statistics(ctx context.Context) (domain.Statistics, error)
	ResetProgress(ctx context.Context) (int64, error)
}

// CLI drives one interactive session over the given reader and writer.
type CLI struct {
	svc quizService
	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

// New creates a new interactive CLI.
func New(log *slog.Logger, svc quizService, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log.With("component", "cli"),
	}
}

const menu = `
Main menu
  1) Create a flashcard
  2) List all flashcards
  3) Practice
  4) Stats
  5) Reset
  6) Exit
`

// Run starts the session: it resolves the user by email, then serves the
// main menu until the user exits or the input stream ends. An unknown
// email ends the session immediately.
func (c *CLI) Run(ctx context.Context) error {
	user, err := c.login(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	ctx = ctxutil.WithUserID(ctx, user.ID)
	fmt.Fprintf(c.out, "Welcome, %s!\n", user.Name)

	for {
		fmt.Fprint(c.out, menu)

		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = c.createFlashcard(ctx)
		case "2":
			err = c.listFlashcards(ctx)
		case "3":
			err = c.practice(ctx)
		case "4":
			err = c.stats(ctx)
		case "5":
			err = c.reset(ctx)
		case "6":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option, try again.")
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// login asks for an email once. An unknown email prints a warning and ends
// the session. A nil user with a nil error means no session was started.
func (c *CLI) login(ctx context.Context) (*domain.User, error) {
	email, err := c.prompt("Enter your email: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	user, err := c.svc.LookupUser(ctx, flashcardsvc.LookupUserInput{Email: strings.TrimSpace(email)})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation) {
			fmt.Fprintln(c.out, "User not found!")
			return nil, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return user, nil
}

func (c *CLI) createFlashcard(ctx context.Context) error {
	question, err := c.prompt("Question: ")
	if err != nil {
		return err
	}
	answer, err := c.prompt("Answer: ")
	if err != nil {
		return err
	}

	_, err = c.svc.CreateFlashcard(ctx, flashcardsvc.CreateFlashcardInput{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateQuestion):
			fmt.Fprintln(c.out, "A flashcard with this question already exists!")
			return nil
		case errors.Is(err, domain.ErrValidation):
			fmt.Fprintln(c.out, "Both question and answer are required!")
			return nil
		}
		return fmt.Errorf("create flashcard: %w", err)
	}

	fmt.Fprintln(c.out, "Flashcard added successfully!")
	return nil
}

func (c *CLI) listFlashcards(ctx context.Context) error {
	cards, err := c.svc.ListFlashcards(ctx)
	if err != nil {
		return fmt.Errorf("list flashcards: %w", err)
	}

	if len(cards) == 0 {
		fmt.Fprintln(c.out, "No flashcards yet.")
		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tQUESTION\tANSWER")
	for i, card := range cards {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, card.Question, card.Answer)
	}
	return w.Flush()
}

func (c *CLI) stats(ctx context.Context) error {
	stats, err := c.svc.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("statistics: %w", err)
	}

	fmt.Fprintf(c.out, "Total questions: %d\n", stats.TotalQuestions)
	fmt.Fprintf(c.out, "Answered: %d%%\n", stats.AnsweredPercent)
	fmt.Fprintf(c.out, "Answered correctly: %d%%\n", stats.CorrectPercent)
	return nil
}

func (c *CLI) reset(ctx context.Context) error {
	confirm, err := c.prompt("This action will reset all your progress, do you wish to continue? (yes/no): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(confirm)) {
	case "yes", "y":
	default:
		// Anything but an explicit yes aborts with the history intact.
		return nil
	}

	if _, err := c.svc.ResetProgress(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}

	fmt.Fprintln(c.out, "Your progress has been reset and all answers deleted!")
	return nil
}

// practice shows the status table and runs the answer loop until the user
// goes back to the main menu.
func (c *CLI) practice(ctx context.Context) error {
	for {
		cards, err := c.svc.PracticeView(ctx)
		if err != nil {
			return fmt.Errorf("practice view: %w", err)
		}

		if len(cards) == 0 {
			fmt.Fprintln(c.out, "No flashcards yet.")
			return nil
		}

		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tQUESTION\tSTATUS")
		for i, card := range cards {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, card.Question, card.Status.Label())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		progress, err := c.svc.Progress(ctx)
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		fmt.Fprintf(c.out, "Completion progress: %d%%\n", progress.Percent)

		choice, err := c.prompt("Pick a question number to practice (0 to go back): ")
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(choice))
		if convErr != nil || n < 0 || n > len(cards) {
			fmt.Fprintln(c.out, "Invalid question number!")
			continue
		}
		if n == 0 {
			return nil
		}

		card := cards[n-1]
		if card.Status.IsFinal() {
			fmt.Fprintln(c.out, "This question is already answered!")
			continue
		}

		fmt.Fprintf(c.out, "Q: %s\n", card.Question)
		answer, err := c.prompt("Your answer: ")
		if err != nil {
			return err
		}

		// The answer is deliberately not trimmed or lowercased: the
		// comparison against the stored answer is exact.
		recorded, err := c.svc.SubmitAnswer(ctx, flashcardsvc.SubmitAnswerInput{
			FlashcardID: card.ID,
			Answer:      answer,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyCorrect) {
				fmt.Fprintln(c.out, "This question is already answered!")
				continue
			}
			return fmt.Errorf("submit answer: %w", err)
		}

		if recorded.Status == domain.AnswerStatusCorrect {
			fmt.Fprintln(c.out, "Great! the answer is correct")
		} else {
			fmt.Fprintln(c.out, "The answer is incorrect!")
		}
	}
}

// prompt prints msg and reads one line, without the trailing newline.
func (c *CLI) prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
