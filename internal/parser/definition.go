// Package parser provides utilities for loading graph definitions.
// It handles HCL decoding, validation, and conversion into graph records.
package parser

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/graphexplorer/core/internal/models"
)

// Z95 is the normal quantile used for default edge intervals.
const Z95 = 1.96

//go:embed demo.hcl
var demoHCL []byte

type Definition struct {
	Nodes []models.Node
	Edges []models.Edge
}

type hclDefinition struct {
	Nodes []*hclNode `hcl:"node,block" validate:"dive"`
	Edges []*hclEdge `hcl:"edge,block" validate:"dive"`
}

type hclNode struct {
	ID          string `hcl:"id,label" validate:"required,excludes=->"`
	Label       string `hcl:"label" validate:"required"`
	Level       string `hcl:"level" validate:"required,oneof=attribute mediator outcome"`
	Group       string `hcl:"group,optional"`
	Description string `hcl:"description,optional"`
}

type hclEdge struct {
	From     string         `hcl:"from,label" validate:"required"`
	To       string         `hcl:"to,label" validate:"required"`
	Status   string         `hcl:"status" validate:"required,oneof=hypothesized supported experimentally_validated"`
	Mean     float64        `hcl:"mean"`
	SD       float64        `hcl:"sd" validate:"gte=0"`
	CILower  *float64       `hcl:"ci_lower,optional"`
	CIUpper  *float64       `hcl:"ci_upper,optional"`
	Evidence []*hclEvidence `hcl:"evidence,block" validate:"dive"`
}

type hclEvidence struct {
	ID         string   `hcl:"id,label"`
	Title      string   `hcl:"title" validate:"required"`
	Summary    string   `hcl:"summary" validate:"required"`
	Direction  string   `hcl:"effect_direction,optional" validate:"omitempty,oneof=beneficial harmful null mixed"`
	Population string   `hcl:"population,optional"`
	Design     string   `hcl:"design,optional"`
	Outcomes   []string `hcl:"outcome_measures,optional"`
	DOI        string   `hcl:"doi,optional"`
	Quality    string   `hcl:"quality,optional" validate:"omitempty,oneof=high moderate low very_low"`
	Notes      string   `hcl:"notes,optional"`
}

var validate = validator.New()

// evalContext exposes z95 and a few numeric helpers so definitions can write
// intervals such as `ci_lower = 0.45 - z95 * 0.10`.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"z95": cty.NumberFloatVal(Z95),
		},
		Functions: map[string]function.Function{
			"abs": stdlib.AbsoluteFunc,
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// ParseDefinition decodes an HCL graph definition held in memory.
func ParseDefinition(src []byte, filename string) (*Definition, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, fmt.Errorf("empty graph definition")
	}

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse graph definition %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// LoadDefinitionFile decodes the HCL graph definition at path.
func LoadDefinitionFile(path string) (*Definition, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse graph definition %s: %w", path, diags)
	}
	return decode(file, path)
}

// DemoDefinition returns the built-in demo graph.
func DemoDefinition() (*Definition, error) {
	return ParseDefinition(demoHCL, "demo.hcl")
}

func decode(file *hcl.File, filename string) (*Definition, error) {
	var raw hclDefinition
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode graph definition %s: %w", filename, diags)
	}
	if err := validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("invalid graph definition %s: %w", filename, describeValidation(err))
	}

	def := &Definition{
		Nodes: make([]models.Node, 0, len(raw.Nodes)),
		Edges: make([]models.Edge, 0, len(raw.Edges)),
	}
	for _, n := range raw.Nodes {
		def.Nodes = append(def.Nodes, models.Node{
			ID:          n.ID,
			Label:       n.Label,
			Level:       models.Level(n.Level),
			Group:       n.Group,
			Description: n.Description,
		})
	}
	for _, e := range raw.Edges {
		def.Edges = append(def.Edges, e.toModel())
	}
	return def, nil
}

func (e *hclEdge) toModel() models.Edge {
	p := models.Param{
		Mean:    e.Mean,
		SD:      e.SD,
		CILower: e.Mean - Z95*e.SD,
		CIUpper: e.Mean + Z95*e.SD,
	}
	if e.CILower != nil {
		p.CILower = *e.CILower
	}
	if e.CIUpper != nil {
		p.CIUpper = *e.CIUpper
	}

	evidence := make([]models.EvidenceItem, 0, len(e.Evidence))
	for _, ev := range e.Evidence {
		evidence = append(evidence, models.EvidenceItem{
			ID:         ev.ID,
			Title:      ev.Title,
			Summary:    ev.Summary,
			Direction:  ev.Direction,
			Population: ev.Population,
			Design:     ev.Design,
			Outcomes:   ev.Outcomes,
			DOI:        ev.DOI,
			Quality:    ev.Quality,
			Notes:      ev.Notes,
		})
	}

	return models.Edge{
		ID:       models.EdgeID(e.From, e.To),
		From:     e.From,
		To:       e.To,
		Status:   models.Status(e.Status),
		Param:    p,
		Evidence: evidence,
	}
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s fails %q", strings.TrimPrefix(fe.Namespace(), "hclDefinition."), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (%s)", fe.Param())
		}
		msgs = append(msgs, msg)
	}
	return errors.New(strings.Join(msgs, "; "))
}
