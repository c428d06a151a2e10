package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for the ledger and balance engine API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(resumeCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(overdueCmd())
	rootCmd.AddCommand(lowStockCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [account-id]",
		Short: "Verify cached balances against entry chains",
		Long:  `Replays entry chains and compares them to cached balances. Without an account ID every account is checked; drifted accounts are halted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/reconcile"
			if len(args) == 1 {
				path = "/api/v1/accounts/" + args[0] + "/reconcile"
			}

			status, body, err := doRequest(http.MethodPost, path)
			if err != nil {
				return err
			}

			if status == http.StatusConflict {
				fmt.Println("balance drift detected, account halted:")
				printBody(body)
				os.Exit(1)
			}

			if status != http.StatusOK {
				return fmt.Errorf("reconcile failed (status %d): %s", status, string(body))
			}

			printBody(body)
			return nil
		},
	}
}

func resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <account-id>",
		Short: "Lift the write halt after a drifted account is repaired",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/resume")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("resume failed (status %d): %s", status, string(body))
			}

			printBody(body)
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <account-id>",
		Short: "Show an account's aggregate and derived status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := doRequest(http.MethodGet, "/api/v1/accounts/"+args[0]+"/summary")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("summary failed (status %d): %s", status, string(body))
			}

			printBody(body)
			return nil
		},
	}
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List financial accounts past their due date",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := doRequest(http.MethodGet, "/api/v1/reports/overdue")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("overdue report failed (status %d): %s", status, string(body))
			}

			printBody(body)
			return nil
		},
	}
}

func lowStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List inventory accounts needing replenishment",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := doRequest(http.MethodGet, "/api/v1/reports/low-stock")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("low-stock report failed (status %d): %s", status, string(body))
			}

			printBody(body)
			return nil
		},
	}
}

func doRequest(method, path string) (int, []byte, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, strings.TrimRight(baseURL, "/")+path, nil)
	if err != nil {
		return 0, nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

func printBody(body []byte) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return
	}

	printJSON(decoded)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to format response: %v\n", err)
		return
	}

	fmt.Println(string(out))
}
