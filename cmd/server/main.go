package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hosammostafait/AICareerAdvisor/config"
)

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type loadConfig func() (config.AppConfig, error)

func newRootCmd(load loadConfig) *cobra.Command {
	serve := newServeCmd(load)
	root := &cobra.Command{
		Use:           "masar",
		Short:         "AI work plans for any profession",
		Long:          `masar turns a profession, its daily tasks and an experience level into a personalised plan for using AI tools at work.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newGenerateCmd(load))
	return root
}
