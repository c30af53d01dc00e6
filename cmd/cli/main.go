package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankcore-cli",
		Short: "BankCore CLI tool",
		Long:  `A command line interface for interacting with the BankCore API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the BankCore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}

	transferCmd := &cobra.Command{
		Use:   "transfer <source> <destination> <amount> [description]",
		Short: "Transfer funds between two accounts",
		Args:  cobra.RangeArgs(3, 4),
		Run: func(cmd *cobra.Command, args []string) {
			description := ""
			if len(args) == 4 {
				description = args[3]
			}
			transfer(args[0], args[1], args[2], description)
		},
	}

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(transferCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Health check PASSED\nResponse: %s\n", string(body))
}

func transfer(source, destination, amount, description string) {
	payload, err := json.Marshal(map[string]string{
		"source_account":      source,
		"destination_account": destination,
		"amount":              amount,
		"description":         description,
	})
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/transfers/", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Transfer REJECTED (Status: %d)\nMessage: %s\n", resp.StatusCode, result["message"])
		os.Exit(1)
	}

	fmt.Printf("Transfer APPLIED\nMessage: %s\n", result["message"])
	if data, ok := result["data"].(map[string]any); ok {
		fmt.Printf("Transaction ID: %s\n", data["transaction_id"])
	}
}
