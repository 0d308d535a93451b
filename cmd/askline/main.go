// Command askline walks through every input mode the library offers.
// It mirrors the manual smoke test: basic reads, defaults, whitespace
// control and an empty prompt.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/askline/input"
	"github.com/simonhull/askline/iostreams"
	"github.com/simonhull/askline/output"
)

const defaultPort = "8080"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "askline",
		Short: "Interactive demo of the askline input library",
		Long: "askline prompts on stdout and reads single lines from stdin,\n" +
			"with optional default values and whitespace trimming.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.SetVerbose(verbose)
			return runDemo()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	return cmd
}

func runDemo() error {
	streams := iostreams.System()

	// Styled prompts only make sense on a real terminal; piped input
	// gets the plain byte-exact format.
	styled := streams.IsInteractive()
	output.Verbose(fmt.Sprintf("interactive terminal: %v", styled))

	fmt.Println("=== askline demo ===")

	fmt.Println("\n1. Basic input:")
	name, err := input.New("Enter your name").Styled(styled).ReadFrom(streams)
	if err != nil {
		return report(err)
	}
	if name == "" {
		output.Info("No name entered!")
	} else {
		fmt.Printf("Hello, %s!\n", name)
	}

	fmt.Println("\n2. Input with default value:")
	port, err := input.New("Enter port").Default(defaultPort).Styled(styled).ReadFrom(streams)
	if err != nil {
		return report(err)
	}
	fmt.Printf("Using port: %s\n", port)

	fmt.Println("\n3. Input with preserved whitespace:")
	raw, err := input.New("Enter text (whitespace preserved)").Trim(false).Styled(styled).ReadFrom(streams)
	if err != nil {
		return report(err)
	}
	fmt.Printf("Raw input: %q\n", raw)

	fmt.Println("\n4. Input with trimming:")
	trimmed, err := input.New("Enter text (whitespace trimmed)").Styled(styled).ReadFrom(streams)
	if err != nil {
		return report(err)
	}
	fmt.Printf("Trimmed input: %q\n", trimmed)

	fmt.Println("\n5. Empty prompt:")
	data, err := input.New("").ReadFrom(streams)
	if err != nil {
		return report(err)
	}
	fmt.Printf("You entered: %q\n", data)

	fmt.Println()
	output.Success("Demo completed successfully!")
	return nil
}

// report prints a classified error message and passes the error through
// for the exit code.
func report(err error) error {
	var (
		writeErr *input.WriteError
		flushErr *input.FlushError
		readErr  *input.ReadError
	)

	switch {
	case errors.As(err, &writeErr):
		output.Error("Could not display the prompt: " + writeErr.Err.Error())
	case errors.As(err, &flushErr):
		output.Error("Prompt was written but not delivered: " + flushErr.Err.Error())
	case errors.As(err, &readErr):
		output.Error("Could not read input: " + readErr.Err.Error())
	default:
		output.Error(err.Error())
	}
	return err
}
