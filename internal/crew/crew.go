package crew

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"
	"google.golang.org/genai"

	"marketbrief/internal/config"
	"marketbrief/internal/tools"
)

const (
	appName     = "marketbrief"
	defaultUser = "scheduler"
)

// searcher abstracts the Tavily client for the researcher's primary tool.
type searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Crew runs the four-stage briefing workflow: research, summarize, format,
// translate. Stages execute strictly in sequence, each receiving the previous
// stage's output as task context, and the translator's output is the final
// briefing handed to the publisher.
type Crew struct {
	llm      model.LLM
	search   searcher
	sessions session.Service
	feeds    []string
	now      func() time.Time
}

func New(ctx context.Context, cfg *config.Config) (*Crew, error) {
	llm, err := gemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini model: %w", err)
	}

	return &Crew{
		llm:      llm,
		search:   tools.NewTavilyClient(cfg.TavilyAPIKey),
		sessions: session.InMemoryService(),
		feeds:    tools.FinanceFeeds,
		now:      time.Now,
	}, nil
}

// Run executes the whole workflow and returns the final briefing text.
func (c *Crew) Run(ctx context.Context) (string, error) {
	var output string

	for _, st := range stages(searchDate(c.now())) {
		request := st.task
		if output != "" {
			request = fmt.Sprintf("%s\n\nContext from the previous task:\n%s", st.task, output)
		}

		result, err := c.runStage(ctx, st, request)
		if err != nil {
			return "", fmt.Errorf("stage %s failed: %w", st.name, err)
		}

		slog.Info("Stage completed", "stage", st.name, "chars", len(result))
		output = result
	}

	return output, nil
}

// runStage spins up a one-off agent and runner for a single stage and
// accumulates its text output.
func (c *Crew) runStage(ctx context.Context, st stage, request string) (string, error) {
	var agentTools []tool.Tool
	if st.useTools {
		agentTools = c.researchTools()
	}

	ag, err := llmagent.New(llmagent.Config{
		Name:        st.name,
		Description: st.goal,
		Model:       c.llm,
		Instruction: st.instruction(),
		Tools:       agentTools,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create agent: %w", err)
	}

	sess, err := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   appName,
		UserID:    defaultUser,
		SessionID: fmt.Sprintf("%s-%s", st.name, uuid.NewString()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r, err := runner.New(runner.Config{
		AppName:        appName,
		Agent:          ag,
		SessionService: c.sessions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create runner: %w", err)
	}

	events := r.Run(ctx, defaultUser, sess.Session.ID(), &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: request}},
	}, agent.RunConfig{})

	var sb strings.Builder
	for event, err := range events {
		if err != nil {
			return "", err
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("%s returned no output", st.name)
	}
	return result, nil
}
