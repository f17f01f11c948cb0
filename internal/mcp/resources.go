// ABOUTME: MCP resource implementations for drink data.
// ABOUTME: Provides tipsy://status, tipsy://session, and tipsy://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/tipsy/internal/alcohol"
	"github.com/harperreed/tipsy/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// tipsy://status - Current remaining units and BAC estimate
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tipsy://status",
		Name:        "Current Status",
		Description: "Remaining units, estimated BAC, and time to sober for the default user",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	// tipsy://session - Current drinking session with pace analysis
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tipsy://session",
		Name:        "Current Session",
		Description: "Drinks in the current session with pace classification",
		MIMEType:    "application/json",
	}, s.handleSessionResource)

	// tipsy://recent - Last 10 drinks
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tipsy://recent",
		Name:        "Recent Drinks",
		Description: "Last 10 logged drinks across all users",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleStatusResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	status, err := s.currentStatus(s.defaultUser, time.Now())
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tipsy://status",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSessionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	drinks, err := s.repo.ListDrinks(nil, false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	samples, err := s.repo.ListActivitySamples(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity samples: %w", err)
	}

	own := session.DrinksWithActivity(drinks, samples, s.defaultUser)
	pace := alcohol.AnalyzePace(own)

	result := map[string]interface{}{
		"drinks":              own,
		"pattern":             string(pace.Pattern),
		"average_gap_minutes": pace.AverageGapMinutes,
		"counts": map[string]int{
			"drinks": len(own),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tipsy://session",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	drinks, err := s.repo.ListDrinks(nil, false, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}

	result := map[string]interface{}{
		"drinks": drinks,
		"counts": map[string]int{
			"drinks": len(drinks),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "tipsy://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
