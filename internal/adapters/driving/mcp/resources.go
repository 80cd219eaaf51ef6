package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for zalgo resources.
	uriScheme = "zalgo://"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "marks",
		Name:        "marks",
		Description: "The full decoration alphabet: above, within and below marks",
		MIMEType:    jsonMIME,
	}, s.handleMarksResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "marks/{class}",
		Name:        "class-marks",
		Description: "Decoration marks of one class (above, within or below)",
		MIMEType:    jsonMIME,
	}, s.handleClassMarksResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Defaults applied when decorate options are omitted",
		MIMEType:    jsonMIME,
	}, s.handleSettingsResource)
}

// markInfo describes one mark in resource listings.
type markInfo struct {
	Mark      string `json:"mark"`
	CodePoint string `json:"code_point"`
	Class     string `json:"class"`
}

func (s *Server) handleMarksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return s.marksResult(req.Params.URI, domain.KindAll)
}

func (s *Server) handleClassMarksResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractClass(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	kind, err := domain.ParseKind(name)
	if err != nil || kind.IsEmpty() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return s.marksResult(req.Params.URI, kind)
}

func (s *Server) marksResult(uri string, kind domain.Kind) (*mcp.ReadResourceResult, error) {
	marks := s.ports.Decoration.Marks(kind)
	infos := make([]markInfo, len(marks))
	for i, r := range marks {
		class, _ := domain.ClassOf(r)
		infos[i] = markInfo{
			Mark:      string(r),
			CodePoint: fmt.Sprintf("%U", r),
			Class:     class.String(),
		}
	}
	return jsonResult(uri, infos)
}

// settingsInfo is the JSON view of the configured defaults.
type settingsInfo struct {
	Kinds     []string `json:"kinds"`
	Intensity string   `json:"intensity"`
	Source    string   `json:"source"`
	Seed      *uint64  `json:"seed,omitempty"`
	Rate      int      `json:"rate"`
}

func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultSettings()
	if s.ports.Settings != nil {
		configured, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		settings = configured
	}

	info := settingsInfo{
		Kinds:     settings.Decoration.Kind.Names(),
		Intensity: settings.Decoration.Intensity.String(),
		Source:    settings.Random.Source.String(),
		Rate:      settings.Output.Rate,
	}
	if settings.Random.HasSeed {
		seed := settings.Random.Seed
		info.Seed = &seed
	}
	return jsonResult(req.Params.URI, info)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}

// extractClass extracts the class name from a URI like zalgo://marks/{class}.
func extractClass(uri string) string {
	const prefix = uriScheme + "marks/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
