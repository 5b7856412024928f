package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/naver2maps/internal/config"
	"github.com/jonathan/naver2maps/internal/links"
	"github.com/jonathan/naver2maps/internal/normalize"
	"github.com/jonathan/naver2maps/internal/resolve"
)

var (
	resolveJSON   bool
	resolveTarget string
)

// maxConcurrentResolves bounds parallel upstream traffic when resolving a
// batch of inputs. Resolutions share no state, so running them side by side
// is safe.
const maxConcurrentResolves = 4

var resolveCmd = &cobra.Command{
	Use:   "resolve [input...]",
	Short: "Resolve one or more links or addresses from the command line",
	Long:  `Resolve Naver Map links, nmap:// deep links or raw addresses and print the destination map URLs. Multiple inputs are resolved concurrently.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print results as JSON")
	resolveCmd.Flags().StringVar(&resolveTarget, "target", "google", "URL to print in plain mode: google or apple")
	rootCmd.AddCommand(resolveCmd)
}

type resolveOutput struct {
	Input     string   `json:"input"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Name      string   `json:"name,omitempty"`
	GoogleURL string   `json:"google_url"`
	AppleURL  string   `json:"apple_url"`
	Error     string   `json:"error,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolveTarget != "google" && resolveTarget != "apple" {
		return fmt.Errorf("target must be google or apple, got %q", resolveTarget)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pipeline := resolve.NewPipeline(resolve.Options{
		PlaceAPIBase:  cfg.PlaceAPIBase,
		PlacePageBase: cfg.PlacePageBase,
		ShortLinkHost: cfg.ShortLinkHost,
		UserAgent:     cfg.UserAgent,
		Referer:       cfg.Referer,
		Timeout:       cfg.HTTPTimeout,
	})

	outputs := make([]resolveOutput, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentResolves)
	for i, input := range args {
		i, input := i, input
		g.Go(func() error {
			// Each goroutine writes its own slot; output order matches input order.
			outputs[i] = resolveOne(ctx, pipeline, input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printOutputs(outputs)
}

func resolveOne(ctx context.Context, pipeline *resolve.Pipeline, input string) resolveOutput {
	out := resolveOutput{Input: input}

	result, err := pipeline.Resolve(ctx, normalize.Extract(input))
	if err != nil {
		out.Error = err.Error()
		return out
	}

	destinations := links.Build(result)
	out.GoogleURL = destinations.GoogleURL
	out.AppleURL = destinations.AppleURL
	if result.HasCoords {
		out.Lat = &result.Lat
		out.Lng = &result.Lng
		out.Name = result.Name
	} else {
		out.Name = result.Query
	}
	return out
}

func printOutputs(outputs []resolveOutput) error {
	if resolveJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(outputs)
	}

	failed := 0
	for _, out := range outputs {
		if out.Error != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", out.Input, out.Error)
			failed++
			continue
		}
		destination := out.GoogleURL
		if resolveTarget == "apple" {
			destination = out.AppleURL
		}
		fmt.Println(destination)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(outputs))
	}
	return nil
}
