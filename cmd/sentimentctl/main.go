// Command sentimentctl is a small operator CLI for the classifier
// service. It classifies feedback texts against a running instance and
// reports model sidecar health.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const requestTimeout = 15 * time.Second

var serverURL string

func main() {
	root := &cobra.Command{
		Use:          "sentimentctl",
		Short:        "Operator CLI for the sentiment classifier service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080",
		"base URL of the classifier service")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newHealthCmd())
	root.AddCommand(newLexiconCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClassifyCmd() *cobra.Command {
	var studentDomain string

	cmd := &cobra.Command{
		Use:   "classify <feedback text>",
		Short: "Classify a single feedback text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(map[string]string{
				"feedback_text": args[0],
				"domain":        studentDomain,
			})
			if err != nil {
				return err
			}
			return doJSON(cmd.Context(), http.MethodPost,
				serverURL+"/api/v1/classify", bytes.NewReader(body), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&studentDomain, "domain", "", "student domain tag (defaults server-side)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report service and model sidecar health",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doJSON(cmd.Context(), http.MethodGet,
				serverURL+"/health", nil, cmd.OutOrStdout()); err != nil {
				return err
			}
			return doJSON(cmd.Context(), http.MethodGet,
				serverURL+"/api/v1/metrics/ml-health", nil, cmd.OutOrStdout())
		},
	}
}

func newLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "Show the service's marker set sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doJSON(cmd.Context(), http.MethodGet,
				serverURL+"/api/v1/lexicon", nil, cmd.OutOrStdout())
		},
	}
}

// doJSON performs the request and pretty-prints the JSON response.
func doJSON(ctx context.Context, method, url string, body io.Reader, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s: %s", resp.Status, string(data))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		_, err = out.Write(data)
		return err
	}
	pretty.WriteByte('\n')
	_, err = out.Write(pretty.Bytes())
	return err
}
