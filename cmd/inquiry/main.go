package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"inquiryapi/internal/client"
	"inquiryapi/internal/logger"
)

func main() {
	log := logger.New(os.Stderr, time.UTC, true).Level(zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("inquiry")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseURL string
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "inquiry",
		Short:         "Submit program search inquiries to the inquiry API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "base-url", envOr("INQUIRY_API_URL", "http://localhost:8080"), "inquiry API base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	newClient := func() *client.Client { return client.New(baseURL) }
	newCtx := func(cmd *cobra.Command) (context.Context, context.CancelFunc) {
		return context.WithTimeout(cmd.Context(), timeout)
	}

	root.AddCommand(newSubmitCmd(newClient, newCtx), newOptionsCmd(newClient, newCtx))
	return root
}

func newSubmitCmd(newClient func() *client.Client, newCtx func(*cobra.Command) (context.Context, context.CancelFunc)) *cobra.Command {
	form := &client.Form{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one inquiry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := newCtx(cmd)
			defer cancel()

			f := client.NewForm(newClient())
			f.FieldOfStudy = form.FieldOfStudy
			f.Destination = form.Destination
			f.EducationLevel = form.EducationLevel

			st := f.Submit(ctx)
			if st.Type != client.StatusSuccess {
				return errors.New(st.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FieldOfStudy, "field-of-study", "", "field of study")
	cmd.Flags().StringVar(&form.Destination, "destination", "", "study destination")
	cmd.Flags().StringVar(&form.EducationLevel, "education-level", "", "education level")
	return cmd
}

func newOptionsCmd(newClient func() *client.Client, newCtx func(*cobra.Command) (context.Context, context.CancelFunc)) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the values offered by the form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := newCtx(cmd)
			defer cancel()

			opts, err := newClient().FormOptions(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fields of study:  %s\n", strings.Join(opts.FieldsOfStudy, ", "))
			fmt.Fprintf(out, "Destinations:     %s\n", strings.Join(opts.Destinations, ", "))
			fmt.Fprintf(out, "Education levels: %s\n", strings.Join(opts.EducationLevels, ", "))
			return nil
		},
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
