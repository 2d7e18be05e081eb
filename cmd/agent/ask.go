package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [text]",
	Short: "Dispatch a single input and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	session, closeSession, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer closeSession()

	reply, err := session.Handle(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(reply.Text)
	return nil
}
