package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stupiduntilnot/localagent/internal/speech"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive console loop",
	Long: `Reads one line at a time. Type 'exit' to quit and 'voice' to take the
next input from the microphone.`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	session, closeSession, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer closeSession()

	synth, err := newSynthesizer()
	if err != nil {
		return err
	}
	var recognizer speech.Recognizer
	if cfg.SpeechEnabled {
		recognizer, err = speech.NewCommandRecognizer(cfg.ListenCommand, requestTimeout())
		if err != nil {
			return err
		}
	}

	fmt.Println("Welcome to your local AI agent!")
	fmt.Println("Type 'exit' to quit. Use 'voice' for voice input.")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()

		if input == "exit" {
			fmt.Println("Goodbye!")
			return nil
		}
		if input == "voice" {
			if recognizer == nil {
				fmt.Println("Voice input is disabled; run with --speak or AGENT_SPEECH=1.")
				continue
			}
			heard, err := recognizer.Listen(ctx)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Printf("You (via voice): %s\n", heard)
			input = heard
		}
		if input == "" {
			continue
		}

		reply, err := session.Handle(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("AI: %s\n", reply.Text)

		if synth != nil {
			// Blocks until playback completes before the next prompt.
			if err := synth.Speak(ctx, reply.Text); err != nil {
				logger.Warn("speech synthesis failed", zap.Error(err))
				fmt.Printf("Speech: %v\n", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
