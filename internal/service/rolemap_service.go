package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"golang.org/x/sync/errgroup"

	"github.com/chandhuDev/JobLens/internal/classifier"
	"github.com/chandhuDev/JobLens/internal/interfaces"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/models"
)

// AnthropicCompleter sends single-turn prompts to Claude.
type AnthropicCompleter struct {
	Client    *anthropic.Client
	Model     anthropic.Model
	MaxTokens int64
}

func NewAnthropicCompleter(apiKey string) *AnthropicCompleter {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &AnthropicCompleter{
		Client:    &client,
		Model:     anthropic.ModelClaudeSonnet4_5_20250929,
		MaxTokens: 4096,
	}
}

func (a *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := a.Client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.Model,
		MaxTokens: a.MaxTokens,
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					{
						OfText: &anthropic.TextBlockParam{
							Type: "text",
							Text: prompt,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty completion")
	}
	return sb.String(), nil
}

const (
	defaultRoleMapBatch   = 50
	defaultRoleMapWorkers = 4
)

// RoleMapResult is the outcome of one generator run.
type RoleMapResult struct {
	Mapping       classifier.RoleMap
	Batches       int
	FailedBatches int
	Rejected      int
}

// RoleMapGenerator asks a Completer to categorise titles the classifier
// cascade could not place. Answers outside the taxonomy are dropped.
type RoleMapGenerator struct {
	Completer interfaces.Completer
	Taxonomy  classifier.Taxonomy
	BatchSize int
	Workers   int
}

func NewRoleMapGenerator(c interfaces.Completer, taxonomy classifier.Taxonomy) *RoleMapGenerator {
	return &RoleMapGenerator{
		Completer: c,
		Taxonomy:  taxonomy,
		BatchSize: defaultRoleMapBatch,
		Workers:   defaultRoleMapWorkers,
	}
}

// Generate categorises titles. A failed batch is logged and skipped; only
// cancellation aborts the run.
func (g *RoleMapGenerator) Generate(ctx context.Context, titles []string) (RoleMapResult, error) {
	titles = uniqueTitles(titles)
	result := RoleMapResult{Mapping: classifier.RoleMap{}}
	if len(titles) == 0 {
		return result, nil
	}

	size := g.BatchSize
	if size <= 0 {
		size = defaultRoleMapBatch
	}
	workers := g.Workers
	if workers <= 0 {
		workers = defaultRoleMapWorkers
	}
	result.Batches = (len(titles) + size - 1) / size

	errs := NewErrorService()
	go errs.HandleError()

	batches := CreateBatchChannel(workers)
	go batches.Feed(titles, size, ctx.Done())

	var mu sync.Mutex
	eg, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		workerID := w
		eg.Go(func() error {
			for batch := range batches.BatchChan {
				if gctx.Err() != nil {
					continue
				}
				answers, rejected, err := g.classifyBatch(gctx, batch)
				if err != nil {
					errs.Send(models.WorkerError{
						WorkerId: workerID,
						Message:  fmt.Sprintf("role map batch of %d titles failed", len(batch)),
						Err:      err,
					})
					continue
				}
				mu.Lock()
				for title, category := range answers {
					result.Mapping[title] = category
				}
				result.Rejected += rejected
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	errs.Close()
	result.FailedBatches = errs.Failed()

	if err := ctx.Err(); err != nil {
		return result, err
	}

	logger.Info().
		Int("titles", len(titles)).
		Int("mapped", len(result.Mapping)).
		Int("rejected", result.Rejected).
		Int("failed_batches", result.FailedBatches).
		Msg("role map generated")
	return result, nil
}

func (g *RoleMapGenerator) classifyBatch(ctx context.Context, batch []string) (map[string]string, int, error) {
	prompt, err := g.prompt(batch)
	if err != nil {
		return nil, 0, err
	}

	reply, err := g.Completer.Complete(ctx, prompt)
	if err != nil {
		return nil, 0, fmt.Errorf("completion: %w", err)
	}

	raw, err := parseRoleAnswers(reply)
	if err != nil {
		return nil, 0, err
	}

	asked := make(map[string]struct{}, len(batch))
	for _, t := range batch {
		asked[t] = struct{}{}
	}

	answers := make(map[string]string, len(raw))
	rejected := 0
	for title, category := range raw {
		if _, ok := asked[title]; !ok {
			rejected++
			continue
		}
		if category == classifier.Other || !g.Taxonomy.Has(category) {
			rejected++
			continue
		}
		answers[title] = category
	}
	return answers, rejected, nil
}

func (g *RoleMapGenerator) prompt(batch []string) (string, error) {
	categories, err := json.Marshal(g.Taxonomy.Names())
	if err != nil {
		return "", err
	}
	titles, err := json.Marshal(batch)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Categorise each job title into exactly one of these categories:
%s

Job titles:
%s

Reply with ONLY a JSON object mapping every job title, exactly as given, to its category.
Use "Other" when no category fits.`, categories, titles), nil
}

// parseRoleAnswers pulls the first JSON object out of a reply that may be
// wrapped in prose or a code fence.
func parseRoleAnswers(reply string) (map[string]string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, errors.New("no JSON object in reply")
	}

	var out map[string]string
	if err := json.Unmarshal([]byte(reply[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode reply: %w", err)
	}
	return out, nil
}

// UnclassifiedTitles returns the cleaned titles of records the cascade left
// as Other, which is what the lookup stage is keyed by.
func UnclassifiedTitles(snap *Snapshot) []string {
	var titles []string
	for _, rec := range snap.Records {
		if rec.JobRole == classifier.Other && rec.RawTitle != "" {
			titles = append(titles, rec.RawTitle)
		}
	}
	return titles
}

func uniqueTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if strings.TrimSpace(t) == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
