package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zinc/internal/diagfmt"
	"zinc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mzn",
	Short: "Tokenize a model or data file",
	Long:  `Tokenize prints the token stream of a file up to EOF or the first lexical error`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("comments", false, "attach comments to tokens (overrides lexer.keep_comments)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	keepComments := sess.cfg.Lexer.KeepComments
	if cmd.Flags().Changed("comments") {
		if keepComments, err = cmd.Flags().GetBool("comments"); err != nil {
			return err
		}
	}

	result, err := driver.Tokenize(args[0], sess.cfg.Driver.MaxDiagnostics, keepComments)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	sess.printDiagnostics(result.Bag, result.FileSet)

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
