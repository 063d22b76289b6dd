// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mdhender/brackets"
	"github.com/mdhender/brackets/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "brackets",
		Short: "Bracket balance checker",
		Long:  `Check that the (), {} and [] delimiters in a source file are closed and nested.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			log.SetOutput(cmd.ErrOrStderr())

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "brackets: version %q\n", brackets.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdCheck(fs))
	cmdRoot.AddCommand(cmdSanitize(fs))
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}
	return cmdRoot
}

func cmdCheck(fs afero.Fs) *cobra.Command {
	var configFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.Flags().Int("context", brackets.DefaultContextRadius, "characters of context shown on each side of an error")
		cmd.Flags().Int("stack-tail", brackets.DefaultStackTail, "number of unclosed delimiters shown after a clean scan")
		cmd.Flags().String("encoding", "utf-8", "text encoding of the input file")
		cmd.Flags().Bool("preserve-lines", false, "keep the newlines of block comments so line numbers match the file")
		cmd.Flags().String("format", config.FormatText, "output format (text, diagnostic)")
		cmd.Flags().Bool("exit-code", false, "exit with a non-zero status on an unmatched or mismatched delimiter")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "check <source-file>",
		Short:        "check the delimiters in a source file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to source file
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if quiet {
				verbose = false
			}

			v := viper.New()
			for key, flag := range map[string]string{
				"context_radius": "context",
				"stack_tail":     "stack-tail",
				"encoding":       "encoding",
				"preserve_lines": "preserve-lines",
				"format":         "format",
				"exit_code":      "exit-code",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("bind %s: %w", flag, err)
				}
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			started := time.Now()
			input := args[0]
			text, err := brackets.ReadSource(fs, input, cfg.Encoding)
			if err != nil {
				return err
			}

			ctx := context.Background()
			sanitized := brackets.NewSanitizer(cfg.PreserveLines).Sanitize(text)
			options := append(cfg.Options(), brackets.WithLogger(newLogger(cmd)))
			s, err := brackets.NewScanner(ctx, input, sanitized, options...)
			if err != nil {
				return err
			}
			rpt := s.Scan()

			switch cfg.Format {
			case config.FormatDiagnostic:
				err = rpt.WriteDiagnostics(cmd.OutOrStdout(), sanitized)
			default:
				err = rpt.Write(cmd.OutOrStdout())
			}
			if err != nil {
				return err
			}
			if verbose {
				log.Printf("%s: %s in %v\n", input, rpt.Outcome, time.Since(started))
			}

			if cfg.ExitCode {
				return rpt.Err()
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdSanitize(fs afero.Fs) *cobra.Command {
	var encoding string
	var outputFile string
	preserveLines := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "text encoding of the input file")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save sanitized text to file")
		cmd.Flags().BoolVar(&preserveLines, "preserve-lines", preserveLines, "keep the newlines of block comments")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "sanitize <source-file>",
		Short:        "print a source file with comments and literals removed",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to source file
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := brackets.ReadSource(fs, args[0], encoding)
			if err != nil {
				return err
			}
			sanitized := brackets.NewSanitizer(preserveLines).Sanitize(text)
			if outputFile == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), sanitized)
				return err
			} else if err = afero.WriteFile(fs, outputFile, []byte(sanitized), 0o644); err != nil {
				return err
			}
			log.Printf("%s: wrote %d bytes\n", outputFile, len(sanitized))
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), brackets.Version().String())
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), brackets.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// newLogger returns a logger for the scanner that honors --debug and --quiet.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	} else if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
