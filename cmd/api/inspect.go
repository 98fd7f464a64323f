package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/parser"
	"github.com/graphexplorer/core/internal/predict"
	"github.com/graphexplorer/core/internal/selection"
	"github.com/spf13/cobra"
)

var predictInputs []string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the graph payload as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadGraph()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), index.Store().Graph())
	},
}

var edgeCmd = &cobra.Command{
	Use:   "edge <id>",
	Short: "Print one edge with its evidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadGraph()
		if err != nil {
			return err
		}
		e, err := index.Store().GetEdge(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), e)
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict --input <attribute>=<value> ...",
	Short: "Print Model A and Model B forecasts for the given attribute values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := parseInputs(predictInputs)
		if err != nil {
			return err
		}
		index, err := loadGraph()
		if err != nil {
			return err
		}
		prediction, err := predict.NewMapper(index).Predict(inputs)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), prediction)
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <element-id>",
	Short: "Print the emphasized and faded elements for a node or edge selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := loadGraph()
		if err != nil {
			return err
		}
		result, err := selectElement(index, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Load and validate a graph definition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			index *graph.Index
			err   error
		)
		if len(args) == 1 {
			index, err = parser.Load(args[0])
		} else {
			index, err = loadGraph()
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, %d edges\n",
			index.Store().NodeCount(), index.Store().EdgeCount())
		return err
	},
}

func init() {
	predictCmd.Flags().StringArrayVar(&predictInputs, "input", nil, "Attribute value as id=value (repeatable)")
	rootCmd.AddCommand(graphCmd, edgeCmd, predictCmd, selectCmd, validateCmd)
}

type selectionResult struct {
	State      string   `json:"state"`
	ID         string   `json:"id"`
	Emphasized []string `json:"emphasized"`
	Faded      []string `json:"faded"`
}

func selectElement(index *graph.Index, id string) (selectionResult, error) {
	engine := selection.NewEngine(index)
	if err := engine.Select(id); err != nil {
		return selectionResult{}, err
	}
	emphasis, err := engine.ComputeEmphasis()
	if err != nil {
		return selectionResult{}, err
	}
	state := engine.State()
	return selectionResult{
		State:      state.Kind.String(),
		ID:         state.ID,
		Emphasized: emphasis.Emphasized.Sorted(),
		Faded:      emphasis.Faded.Sorted(),
	}, nil
}

// parseInputs turns repeated id=value flags into prediction inputs. A repeated
// id keeps the last value.
func parseInputs(pairs []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		id, raw, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: input %q must look like id=value", graph.ErrInvalidInput, pair)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: input %q: %v", graph.ErrInvalidInput, pair, err)
		}
		inputs[id] = value
	}
	return inputs, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
