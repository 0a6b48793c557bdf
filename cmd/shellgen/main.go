package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/1pkg/shellgen/definition"
	"github.com/1pkg/shellgen/generators"
	_ "github.com/1pkg/shellgen/generators/fish"
	_ "github.com/1pkg/shellgen/generators/zsh"
	"github.com/1pkg/shellgen/templates"
)

func main() {
	if err := root().Execute(); err != nil {
		os.Exit(1)
	}
}

func root() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shellgen",
		Short:        "Generate shell completion scripts from the http argument specification",
		SilenceUsage: true,
	}
	cmd.AddCommand(generate(), shells())
	return cmd
}

func generate() *cobra.Command {
	var outdir, tpldir string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render completion scripts for every registered shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()
			spec, err := definition.Load()
			if err != nil {
				return err
			}
			var tfs fs.FS = templates.FS
			if tpldir != "" {
				tfs = os.DirFS(tpldir)
			}
			return generators.GenerateAll(logger, spec, tfs, outdir)
		},
	}
	cmd.Flags().StringVar(&outdir, "out", ".", "directory the completion scripts are written to")
	cmd.Flags().StringVar(&tpldir, "templates", "", "directory overriding the embedded completion templates")
	return cmd
}

func shells() *cobra.Command {
	return &cobra.Command{
		Use:   "shells",
		Short: "List the registered shell drivers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range generators.Drivers() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
