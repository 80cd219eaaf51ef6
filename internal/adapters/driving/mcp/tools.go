package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// DecorateInput is the input schema for the decorate tool.
type DecorateInput struct {
	Text      string   `json:"text" jsonschema:"the text to decorate"`
	Kinds     []string `json:"kinds,omitempty" jsonschema:"mark classes to use: above, within, below (default from settings)"`
	Intensity string   `json:"intensity,omitempty" jsonschema:"tiny, normal, large, random or exact:a,w,b (default from settings)"`
	Source    string   `json:"source,omitempty" jsonschema:"random source: default, pcg, chacha8 or crypto"`
	Seed      *uint64  `json:"seed,omitempty" jsonschema:"seed for a reproducible result"`
}

// DecorateOutput is the output schema for the decorate tool.
type DecorateOutput struct {
	Text      string `json:"text"`
	Kinds     string `json:"kinds"`
	Intensity string `json:"intensity"`
}

// TextInput is the input schema for tools that take only text.
type TextInput struct {
	Text string `json:"text" jsonschema:"the text to process"`
}

// StripOutput is the output schema for the strip tool.
type StripOutput struct {
	Text    string `json:"text"`
	Removed int    `json:"removed"`
}

// IsMarkOutput is the output schema for the is_mark tool.
type IsMarkOutput struct {
	Results []MarkResult `json:"results"`
}

// MarkResult reports on one character.
type MarkResult struct {
	CodePoint string `json:"code_point"`
	IsMark    bool   `json:"is_mark"`
	Class     string `json:"class,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "decorate",
		Description: "Decorate text with combining marks above, within and below each character",
	}, s.handleDecorate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "strip",
		Description: "Remove every decoration mark from text",
	}, s.handleStrip)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "is_mark",
		Description: "Report for each character whether it is a decoration mark and of which class",
	}, s.handleIsMark)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect",
		Description: "Count runes, base characters, marks per class, graphemes and display width",
	}, s.handleInspect)
}

func (s *Server) handleDecorate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DecorateInput,
) (*mcp.CallToolResult, DecorateOutput, error) {
	opts, err := s.options(input)
	if err != nil {
		return nil, DecorateOutput{}, err
	}

	text, err := s.ports.Decoration.Decorate(ctx, input.Text, opts)
	if err != nil {
		return nil, DecorateOutput{}, err
	}

	return nil, DecorateOutput{
		Text:      text,
		Kinds:     opts.Kind.String(),
		Intensity: opts.Intensity.String(),
	}, nil
}

// options layers the tool arguments over the configured defaults.
func (s *Server) options(input DecorateInput) (domain.Options, error) {
	settings := domain.DefaultSettings()
	if s.ports.Settings != nil {
		configured, err := s.ports.Settings.Get()
		if err != nil {
			return domain.Options{}, fmt.Errorf("loading settings: %w", err)
		}
		settings = configured
	}
	opts := settings.Options()

	if len(input.Kinds) > 0 {
		kind, err := domain.KindFromNames(input.Kinds)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Kind = kind
	}
	if input.Intensity != "" {
		intensity, err := domain.ParseIntensity(input.Intensity)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Intensity = intensity
	}
	if err := opts.Intensity.CheckLimit(domain.MaxInteractiveCount); err != nil {
		return domain.Options{}, err
	}
	if input.Source != "" {
		source, err := domain.ParseRandomSourceName(input.Source)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Random.Source = source
	}
	if input.Seed != nil {
		opts.Random.Seed = *input.Seed
		opts.Random.HasSeed = true
	}
	return opts, nil
}

func (s *Server) handleStrip(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, StripOutput, error) {
	stripped := s.ports.Decoration.Strip(input.Text)
	return nil, StripOutput{
		Text:    stripped,
		Removed: len([]rune(input.Text)) - len([]rune(stripped)),
	}, nil
}

func (s *Server) handleIsMark(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, IsMarkOutput, error) {
	output := IsMarkOutput{Results: make([]MarkResult, 0, len(input.Text))}
	for _, r := range input.Text {
		result := MarkResult{
			CodePoint: fmt.Sprintf("%U", r),
			IsMark:    s.ports.Decoration.IsMark(r),
		}
		if class, ok := domain.ClassOf(r); ok {
			result.Class = class.String()
		}
		output.Results = append(output.Results, result)
	}
	return nil, output, nil
}

func (s *Server) handleInspect(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, domain.TextStats, error) {
	return nil, s.ports.Decoration.Inspect(input.Text), nil
}
